package record

import (
	"strconv"
	"strings"
)

// DefaultForceString lists the field names that must never be coerced to a
// number even when they look like one (leading zeros in fips codes, hashes,
// letter grades that sort like numbers once mangled, timestamps).
var DefaultForceString = []string{
	"state",
	"fips",
	"hash",
	"grade",
	"dataqualitygrade",
	"totaltestresultssource",
	"lastupdateet",
	"checktimeet",
}

// Coercer turns raw field strings into typed values: int64, float64 or
// string. Parse failures are not errors, the value just stays a string.
type Coercer struct {
	forceString map[string]bool
}

// NewCoercer builds a coercer with the given forced-string field names,
// matched case-insensitively.
func NewCoercer(forceString ...string) *Coercer {
	c := &Coercer{
		forceString: map[string]bool{},
	}
	for _, f := range forceString {
		c.forceString[strings.ToLower(f)] = true
	}
	return c
}

// Value coerces one raw field. Order: forced string, integer, integer with
// thousands separators removed ("1,234"), float, string unchanged.
func (c *Coercer) Value(field, raw string) any {

	if c.forceString[strings.ToLower(field)] {
		return raw
	}

	if looksLikeInt(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}

	if strings.Contains(raw, ",") {
		stripped := strings.ReplaceAll(raw, ",", "")
		if looksLikeInt(stripped) {
			if n, err := strconv.ParseInt(stripped, 10, 64); err == nil {
				return n
			}
		}
	}

	if looksLikeFloat(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	return raw
}

// looksLikeInt reports whether s is an optional sign followed by digits only.
func looksLikeInt(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// looksLikeFloat restricts the float attempt to decimal/exponent syntax, so
// strconv specials like "Inf", "NaN" or hex floats stay strings.
func looksLikeFloat(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return digits
}
