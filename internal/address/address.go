// Package address holds the US street address a lookup is run against, along
// with the field rules applied before any request is made.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation sentinels. Each one carries the hint shown when a prompted
// value is rejected.
var (
	ErrInvalidStreet = errors.New("invalid street address format")
	ErrInvalidCity   = errors.New("invalid city name")
	ErrInvalidState  = errors.New("invalid state code; use a two-letter US state code such as CA")
	ErrInvalidZip    = errors.New("invalid ZIP code; use five digits, optionally followed by -1234")
)

var (
	streetPattern = regexp.MustCompile(`^\d+.*\b[a-z]+\b.*(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr)\b.*`)
	zipPattern    = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
)

var states = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

// Query is a single property address. It is built from user input for one
// run and never stored.
type Query struct {
	Street string `json:"street" yaml:"street"`
	City   string `json:"city" yaml:"city"`
	State  string `json:"state" yaml:"state"`
	Zip    string `json:"zip" yaml:"zip"`
}

// String renders the address on one line, e.g. "123 Main St, Springfield, IL 62704".
func (q Query) String() string {
	return fmt.Sprintf("%s, %s, %s %s", q.Street, q.City, q.State, q.Zip)
}

// Normalize trims every field and upper-cases the state code.
func (q Query) Normalize() Query {
	return Query{
		Street: strings.TrimSpace(q.Street),
		City:   strings.TrimSpace(q.City),
		State:  NormalizeState(q.State),
		Zip:    strings.TrimSpace(q.Zip),
	}
}

// Validate checks all four fields and joins every failure.
func (q Query) Validate() error {
	return errors.Join(
		ValidateStreet(q.Street),
		ValidateCity(q.City),
		ValidateState(q.State),
		ValidateZip(q.Zip),
	)
}

// NormalizeState trims and upper-cases a state code.
func NormalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateStreet requires a house number and a recognised street suffix,
// between 5 and 100 characters.
func ValidateStreet(street string) error {
	if len(strings.TrimSpace(street)) < 5 || len(street) > 100 {
		return ErrInvalidStreet
	}
	if !streetPattern.MatchString(strings.ToLower(street)) {
		return ErrInvalidStreet
	}
	return nil
}

// ValidateCity accepts up to 50 letters and spaces.
func ValidateCity(city string) error {
	if city == "" || utf8.RuneCountInString(city) > 50 {
		return ErrInvalidCity
	}
	for _, r := range city {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return ErrInvalidCity
		}
	}
	return nil
}

// ValidateState accepts the 50 US state codes, upper case.
func ValidateState(state string) error {
	if len(state) != 2 {
		return ErrInvalidState
	}
	if _, ok := states[state]; !ok {
		return ErrInvalidState
	}
	return nil
}

// ValidateZip accepts 12345 and 12345-6789.
func ValidateZip(zip string) error {
	if !zipPattern.MatchString(zip) {
		return ErrInvalidZip
	}
	return nil
}
