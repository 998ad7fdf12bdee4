package dialog

import (
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// fieldErrors accumulates validation failures across a form.
type fieldErrors []domain.FieldError

func (fe *fieldErrors) add(field, msg string) {
	*fe = append(*fe, domain.FieldError{Field: field, Message: msg})
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return domain.NewValidationErrors(fe)
}

func (fe *fieldErrors) required(field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, "required")
	}
	return v
}

// number parses a finite, non-negative decimal.
func (fe *fieldErrors) number(field, raw string) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, "required")
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fe.add(field, "must be a number")
		return 0
	}
	if f < 0 {
		fe.add(field, "must not be negative")
		return 0
	}
	return f
}

// integer parses a whole number within [lo, hi].
func (fe *fieldErrors) integer(field, raw string, lo, hi int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, "required")
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fe.add(field, "must be a whole number")
		return 0
	}
	if n < lo || n > hi {
		fe.add(field, "must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
		return 0
	}
	return n
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
