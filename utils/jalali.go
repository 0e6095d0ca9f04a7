package utils

import (
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Dates cross the API in the solar Hijri (Jalali) calendar, the calendar
// the back office operates in. Storage stays Gregorian time.Time; the
// conversion happens here and nowhere else. Civil dates are interpreted
// in the Iran timezone.

// JalaliDate renders t as a Jalali civil date, e.g. "1403/02/14".
func JalaliDate(t time.Time) string {
	return ptime.New(t.In(ptime.Iran())).Format("yyyy/MM/dd")
}

// JalaliDateTime renders t as a Jalali timestamp,
// e.g. "1403/02/14 - 17:05:09".
func JalaliDateTime(t time.Time) string {
	return ptime.New(t.In(ptime.Iran())).Format("yyyy/MM/dd - HH:mm:ss")
}

// ParseJalaliDate parses a "yyyy/MM/dd" Jalali date into the Gregorian
// instant at midnight, Iran time.
func ParseJalaliDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, &time.ParseError{Layout: "yyyy/MM/dd", Value: s}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, &time.ParseError{Layout: "yyyy/MM/dd", Value: s}
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, &time.ParseError{Layout: "yyyy/MM/dd", Value: s}
	}
	pt := ptime.Date(nums[0], ptime.Month(nums[1]), nums[2], 0, 0, 0, 0, ptime.Iran())
	// the calendar normalizes overflow (Esfand 31 rolls into Farvardin);
	// a date that does not round-trip never existed
	if pt.Year() != nums[0] || int(pt.Month()) != nums[1] || pt.Day() != nums[2] {
		return time.Time{}, &time.ParseError{Layout: "yyyy/MM/dd", Value: s}
	}
	return pt.Time(), nil
}
