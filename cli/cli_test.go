package cli

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/hoodca/statedb/loader"
	"github.com/hoodca/statedb/service"
	"github.com/hoodca/statedb/store"
)

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {

	t.Helper()

	csv := "state,fips,positive\n" +
		"CA,06,5\n" +
		"CO,08,2\n" +
		"CA,06,7\n"

	dataset, err := loader.Load("covid", strings.NewReader(csv), &loader.Options{
		NormalizeKeys: true,
	})
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}

	s := store.NewStore(&store.Config{})
	s.Datasets["covid"] = dataset

	out := &bytes.Buffer{}
	return &Console{
		Servicer: service.NewService(s),
		Dataset:  "covid",
		In:       strings.NewReader(input),
		Out:      out,
	}, out
}

func TestConsole_All(t *testing.T) {
	c, out := newTestConsole(t, "all\nquit\n")

	AssertNil(c.Run())

	AssertEqual(strings.Contains(out.String(), "CA: 2 rows"), true)
	AssertEqual(strings.Contains(out.String(), "CO: 1 rows"), true)
	AssertEqual(strings.Contains(out.String(), "Goodbye"), true)
}

func TestConsole_Lookup(t *testing.T) {
	c, out := newTestConsole(t, "ca\nexit\n")

	AssertNil(c.Run())

	AssertEqual(strings.Contains(out.String(), "Showing 2 rows for CA"), true)
	AssertEqual(strings.Contains(out.String(), "--- row 1 ---"), true)
	AssertEqual(strings.Contains(out.String(), "fips: 06"), true)
	AssertEqual(strings.Contains(out.String(), "positive: 5"), true)
}

func TestConsole_UnknownCode(t *testing.T) {
	c, out := newTestConsole(t, "CZ\nquit\n")

	AssertNil(c.Run())

	AssertEqual(strings.Contains(out.String(), "No data for state code: CZ"), true)
	AssertEqual(strings.Contains(out.String(), "Did you mean: CA, CO"), true)
}

func TestConsole_BlankInputReprompts(t *testing.T) {
	c, out := newTestConsole(t, "\n\nquit\n")

	AssertNil(c.Run())

	AssertEqual(strings.Count(out.String(), "State code (or all/quit):"), 3)
}

func TestConsole_EndOfInput(t *testing.T) {
	c, out := newTestConsole(t, "")

	AssertNil(c.Run())

	AssertEqual(strings.Contains(out.String(), "Goodbye"), true)
}
