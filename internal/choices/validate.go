package choices

import (
	"math"
	"strconv"
	"strings"
)

// ParseSalary converts operator text into a salary.
// Accepts any finite, non-negative decimal such as "50000" or "50000.50".
func ParseSalary(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrSalaryEmpty
	}

	// ParseFloat also takes hex floats like 0x1p4
	if strings.ContainsAny(s, "xX") {
		return 0, ErrSalaryNotValid
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrSalaryNotValid
	}
	if v < 0 {
		return 0, ErrSalaryNegative
	}
	return v, nil
}

// ValidateSalary is the prompt validation hook for salary input
func ValidateSalary(s string) error {
	_, err := ParseSalary(s)
	return err
}

// ValidateName rejects blank input
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNameEmpty
	}
	return nil
}
