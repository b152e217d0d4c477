package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/receiptvault/receiptvault/internal/export"
	"github.com/receiptvault/receiptvault/internal/importutil"
)

const maxImportSize = 32 << 20

func (s *Server) exportHandler(w http.ResponseWriter, _ *http.Request) {
	now := s.now()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(now)))

	if err := export.JSON(w, s.store.List(), s.store.Settings(), now); err != nil {
		s.logger.Error("failed to export backup", "error", err.Error())
	}
}

func (s *Server) exportCSVHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="receipts.csv"`)

	if err := export.CSV(w, s.store.List()); err != nil {
		s.logger.Error("failed to export csv", "error", err.Error())
	}
}

// importHandler replaces the store wholesale with an uploaded backup. A
// document that fails validation leaves the store untouched.
func (s *Server) importHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			http.Error(w, "No file submitted", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	receipts, settings, err := importutil.Import(file)
	if err != nil {
		s.logger.Warn("rejected import", "file", header.Filename, "error", err.Error())
		http.Error(w, "invalid file format", http.StatusUnprocessableEntity)
		return
	}

	if err = s.store.Replace(receipts); err != nil {
		s.logger.Error("failed to import receipts", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if settings != nil {
		merged := s.store.Settings().Merge(*settings)
		if err = s.store.SaveSettings(merged); err != nil {
			s.logger.Error("failed to import settings", "error", err.Error())
		}
	}

	s.logger.Info("imported backup", "file", header.Filename, "receipts", len(receipts))
	http.Redirect(w, r, "/?msg=Data+imported", http.StatusSeeOther)
}

// clearHandler wipes the vault. Irreversible.
func (s *Server) clearHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.logger.Error("failed to clear data", "error", err.Error())
		http.Redirect(w, r, "/?err=Error+clearing+data", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?msg=All+data+cleared", http.StatusSeeOther)
}
