package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical day-month-year form used for storage and display.
const DateLayout = "02-01-2006"

// inputLayout is what a date picker hands us.
const inputLayout = "2006-01-02"

// FormatDate renders t as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate accepts YYYY-MM-DD or DD-MM-YYYY and returns DD-MM-YYYY.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{inputLayout, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatDate(t), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q (want YYYY-MM-DD or DD-MM-YYYY)", s)
}
