package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// Draft is the best-effort structured result of parsing recognized receipt
// text. Every field is always present; defaults are applied when nothing
// could be extracted.
type Draft struct {
	Store    string
	Title    string
	Amount   int64 // cents
	Date     receipt.Date
	Category receipt.Category
}

// FormDraft converts the parsed fields to the string form state that
// prefills the add-receipt form.
func (d Draft) FormDraft() receipt.Draft {
	form := receipt.Draft{
		Title:    d.Title,
		Store:    d.Store,
		Date:     d.Date.String(),
		Category: string(d.Category),
	}
	if d.Amount > 0 {
		form.Amount = receipt.FormatAmount(d.Amount)
	}
	return form
}

var amountRe = regexp.MustCompile(`[$€£¥₹]\s*(\d+\.?\d*)|(\d+\.?\d*)\s*[$€£¥₹]`)

var dateRe = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})|(\d{2,4})[-/](\d{1,2})[-/](\d{1,2})`)

type categoryMatcher struct {
	re       *regexp.Regexp
	category receipt.Category
}

var categoryMatchers = []categoryMatcher{
	{re: regexp.MustCompile(`grocery|market|food`), category: receipt.CategoryFood},
	{re: regexp.MustCompile(`gas|fuel|shell|exxon`), category: receipt.CategoryGas},
	{re: regexp.MustCompile(`pharmacy|hospital|clinic`), category: receipt.CategoryHealthcare},
	{re: regexp.MustCompile(`restaurant|cafe|pizza`), category: receipt.CategoryFood},
}

// Parse maps raw recognized text to a structured draft. It is a total
// function: malformed input only produces a draft with default fields,
// never an error.
func Parse(raw string) Draft {
	draft := Draft{Category: receipt.CategoryOther}

	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return draft
	}

	// The store name is usually the first printed line.
	draft.Store = lines[0]
	draft.Title = "Receipt from " + lines[0]
	draft.Category = matchCategory(lines[0])

	draft.Amount = extractAmount(lines)
	draft.Date = extractDate(lines)

	return draft
}

// extractAmount collects every currency-adjacent number and keeps the
// largest: totals tend to be the biggest figure on a receipt.
func extractAmount(lines []string) int64 {
	var best int64
	for _, line := range lines {
		for _, match := range amountRe.FindAllStringSubmatch(line, -1) {
			digits := match[1]
			if digits == "" {
				digits = match[2]
			}
			value, err := strconv.ParseFloat(digits, 64)
			if err != nil || value <= 0 {
				continue
			}
			if cents := receipt.Cents(value); cents > best {
				best = cents
			}
		}
	}
	return best
}

// extractDate scans every line for a D/M/Y or Y/M/D token. The last line
// with a parsable token wins, matching the original extraction behavior.
func extractDate(lines []string) receipt.Date {
	var date receipt.Date
	for _, line := range lines {
		match := dateRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		var day, month, year string
		if match[1] != "" {
			day, month, year = match[1], match[2], match[3]
		} else {
			year, month, day = match[4], match[5], match[6]
		}

		if parsed, ok := buildDate(year, month, day); ok {
			date = parsed
		}
	}
	return date
}

func buildDate(yearStr, monthStr, dayStr string) (receipt.Date, bool) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return receipt.Date{}, false
	}

	d := receipt.NewDate(year, time.Month(month), day)
	// Reject overflows such as 31/02 that time.Date silently normalizes.
	if d.Day() != day || d.Month() != time.Month(month) {
		return receipt.Date{}, false
	}

	return d, true
}

func matchCategory(store string) receipt.Category {
	lowered := strings.ToLower(store)
	for _, m := range categoryMatchers {
		if m.re.MatchString(lowered) {
			return m.category
		}
	}
	return receipt.CategoryOther
}
