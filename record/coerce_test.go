package record

import (
	"fmt"
	"testing"

	. "github.com/fulldump/biff"
)

func TestCoercer_Integer(t *testing.T) {
	c := NewCoercer()
	AssertEqual(c.Value("pop", "39000000"), int64(39000000))
	AssertEqual(c.Value("delta", "-12"), int64(-12))
	AssertEqual(c.Value("delta", "+7"), int64(7))
}

func TestCoercer_ThousandsSeparators(t *testing.T) {
	c := NewCoercer()
	AssertEqual(c.Value("pop", "1,234"), int64(1234))
	AssertEqual(c.Value("pop", "12,345,678"), int64(12345678))
}

func TestCoercer_Float(t *testing.T) {
	c := NewCoercer()
	AssertEqual(c.Value("rate", "3.14"), 3.14)
	AssertEqual(c.Value("rate", "1e5"), 1e5)
	AssertEqual(c.Value("rate", "-0.5"), -0.5)
}

func TestCoercer_StringFallback(t *testing.T) {
	c := NewCoercer()
	AssertEqual(c.Value("note", "pending"), "pending")
	AssertEqual(c.Value("note", ""), "")
	AssertEqual(c.Value("note", "12abc"), "12abc")
	AssertEqual(c.Value("note", "1.2.3"), "1.2.3")
	AssertEqual(c.Value("note", "Inf"), "Inf")
	AssertEqual(c.Value("note", "NaN"), "NaN")
}

func TestCoercer_ForcedString(t *testing.T) {
	c := NewCoercer(DefaultForceString...)
	AssertEqual(c.Value("fips", "06"), "06")
	AssertEqual(c.Value("state", "CA"), "CA")
	AssertEqual(c.Value("hash", "123456"), "123456")
	AssertEqual(c.Value("FIPS", "06"), "06") // case-insensitive
}

func TestCoercer_RoundTrip(t *testing.T) {
	c := NewCoercer()

	n := c.Value("pop", "42")
	AssertEqual(c.Value("pop", fmt.Sprintf("%d", n)), n)

	f := c.Value("rate", "2.5")
	AssertEqual(c.Value("rate", fmt.Sprintf("%v", f)), f)
}

func TestCoercer_IntegerOverflowFallsToFloat(t *testing.T) {
	c := NewCoercer()
	AssertEqual(c.Value("pop", "99999999999999999999"), 1e20)
}
