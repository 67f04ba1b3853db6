package http

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"bemviver/internal/core"
)

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseDateOr parses a YYYY-MM-DD value, falling back when empty or
// invalid.
func parseDateOr(value string, fallback core.Date) core.Date {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := core.ParseDate(value)
	if err != nil {
		return fallback
	}
	return d
}

// parseDecimal accepts decimals with either comma or dot, the way the
// height field collects meters.
func parseDecimal(value string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(msg) + `</div>`))
}

func writeSuccess(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">` + template.HTMLEscapeString(msg) + `</div>`))
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}
