package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BeginningYear is the first season the stats endpoints carry data for.
const BeginningYear = 1996

// ErrInvalidYear is returned when a year cannot be parsed or falls outside the collected range.
var ErrInvalidYear = errors.New("invalid season year")

// Validator parses and bounds-checks season start years.
type Validator struct {
	Now func() time.Time
}

// NewValidator returns a Validator backed by the wall clock.
func NewValidator() Validator {
	return Validator{Now: time.Now}
}

// Parse converts raw into a season start year between BeginningYear and the current calendar year.
func (v Validator) Parse(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidYear, raw)
	}
	if year < BeginningYear {
		return 0, fmt.Errorf("%w: %d is before %d", ErrInvalidYear, year, BeginningYear)
	}
	if current := v.now().Year(); year > current {
		return 0, fmt.Errorf("%w: %d is after %d", ErrInvalidYear, year, current)
	}
	return year, nil
}

func (v Validator) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

// ParseYear validates raw against the wall clock.
func ParseYear(raw string) (int, error) {
	return NewValidator().Parse(raw)
}

// Range returns the inclusive ascending years from begin to end.
// An inverted range yields no years.
func Range(begin, end int) []int {
	if begin > end {
		return []int{}
	}
	years := make([]int, 0, end-begin+1)
	for y := begin; y <= end; y++ {
		years = append(years, y)
	}
	return years
}

// Label formats a season start year the way the stats site does, e.g. 2020 -> "2020-21".
func Label(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
