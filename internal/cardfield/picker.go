// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	monthsPerYear = 12
	// YearSpan is how many years past the current one the picker offers.
	YearSpan = 20
)

var (
	ErrInvalidSelection = errors.New("invalid expiry selection")
	ErrInvalidExpiry    = errors.New("invalid expiry value")
)

// Selection is a month/year pair taken from a Picker.
type Selection struct {
	Month string // "01".."12"
	Year  string // four digits
}

// Display is the text shown in the field, e.g. "04/2031".
func (s Selection) Display() string {
	return s.Month + "/" + s.Year
}

// Reported is the value handed to the host, e.g. "04/31".
func (s Selection) Reported() string {
	if len(s.Year) < 2 {
		return s.Month + "/" + s.Year
	}
	return s.Month + "/" + s.Year[len(s.Year)-2:]
}

// Picker holds the option lists of one picker presentation. The year list is
// fixed when the picker is created so it cannot drift while it is open.
type Picker struct {
	months []string
	years  []string
}

// NewPicker builds the options for a picker opened at now.
func NewPicker(now time.Time) *Picker {
	p := &Picker{
		months: make([]string, 0, monthsPerYear),
		years:  make([]string, 0, YearSpan+1),
	}
	for m := 1; m <= monthsPerYear; m++ {
		p.months = append(p.months, fmt.Sprintf("%02d", m))
	}
	year := now.Year()
	for y := year; y <= year+YearSpan; y++ {
		p.years = append(p.years, strconv.Itoa(y))
	}
	return p
}

// Options returns copies of the month and year lists.
func (p *Picker) Options() (months, years []string) {
	return p.Months(), p.Years()
}

func (p *Picker) Months() []string { return append([]string(nil), p.months...) }
func (p *Picker) Years() []string  { return append([]string(nil), p.years...) }

// Select composes the selection at the given row indices.
func (p *Picker) Select(monthIndex, yearIndex int) (Selection, error) {
	if monthIndex < 0 || monthIndex >= len(p.months) {
		return Selection{}, fmt.Errorf("%w: month index %d out of range [0,%d)", ErrInvalidSelection, monthIndex, len(p.months))
	}
	if yearIndex < 0 || yearIndex >= len(p.years) {
		return Selection{}, fmt.Errorf("%w: year index %d out of range [0,%d)", ErrInvalidSelection, yearIndex, len(p.years))
	}
	return Selection{Month: p.months[monthIndex], Year: p.years[yearIndex]}, nil
}

// IndexOf maps an expiry value back to picker rows. It accepts "MM/YY",
// "MM/YYYY" and "MMYY". Years outside the picker's range are rejected.
func (p *Picker) IndexOf(value string) (monthIndex, yearIndex int, err error) {
	month, year, err := parseExpiry(value)
	if err != nil {
		return 0, 0, err
	}
	for i, y := range p.years {
		if y == year || (len(year) == 2 && strings.HasSuffix(y, year)) {
			return month - 1, i, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: year %s not offered", ErrInvalidExpiry, year)
}

func parseExpiry(value string) (month int, year string, err error) {
	s := strings.TrimSpace(value)
	var mm string
	if i := strings.IndexByte(s, '/'); i >= 0 {
		mm, year = s[:i], s[i+1:]
	} else if len(s) == 4 {
		mm, year = s[:2], s[2:]
	} else {
		return 0, "", fmt.Errorf("%w: %q must be MM/YY, MM/YYYY or MMYY", ErrInvalidExpiry, value)
	}
	if len(mm) != 2 || (len(year) != 2 && len(year) != 4) || !digitsOnly(mm) || !digitsOnly(year) {
		return 0, "", fmt.Errorf("%w: %q must be MM/YY, MM/YYYY or MMYY", ErrInvalidExpiry, value)
	}
	month, _ = strconv.Atoi(mm)
	if month < 1 || month > monthsPerYear {
		return 0, "", fmt.Errorf("%w: month must be 01..12", ErrInvalidExpiry)
	}
	return month, year, nil
}
