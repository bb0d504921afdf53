package csvline

import (
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func TestSplit_NoQuotes(t *testing.T) {
	line := "state,fips,pop"
	AssertEqual(Split(line), strings.Split(line, ","))
}

func TestSplit_EmptyLine(t *testing.T) {
	AssertEqual(Split(""), []string{""})
}

func TestSplit_EmptyFields(t *testing.T) {
	AssertEqual(Split("a,,c,"), []string{"a", "", "c", ""})
}

func TestSplit_QuotedComma(t *testing.T) {
	AssertEqual(Split(`CA,"Los Angeles, CA",100`), []string{"CA", "Los Angeles, CA", "100"})
}

func TestSplit_EscapedQuote(t *testing.T) {
	AssertEqual(Split(`"He said ""hi"""`), []string{`He said "hi"`})
}

func TestSplit_QuotedEmptyField(t *testing.T) {
	AssertEqual(Split(`"TX",,29000000`), []string{"TX", "", "29000000"})
}

func TestSplit_UnbalancedQuote(t *testing.T) {
	// quote opened but never closed: in-quotes through end of line, no error
	AssertEqual(Split(`a,"b,c`), []string{"a", "b,c"})
}

func TestSplit_PreservesWhitespace(t *testing.T) {
	AssertEqual(Split(" a , b "), []string{" a ", " b "})
}

func TestSplitter_Trim(t *testing.T) {
	s := &Splitter{Trim: true}
	AssertEqual(s.Split(" a , b ,c"), []string{"a", "b", "c"})
}
