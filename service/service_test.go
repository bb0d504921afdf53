package service

import (
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/hoodca/statedb/loader"
	"github.com/hoodca/statedb/record"
	"github.com/hoodca/statedb/store"
)

func newTestService(t *testing.T) *Service {

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

	return NewService(s)
}

func TestService_Lookup(t *testing.T) {
	s := newTestService(t)

	records, err := s.Lookup("covid", "CA")
	AssertNil(err)
	AssertEqual(len(records), 2)

	records, err = s.Lookup("covid", "ZZ")
	AssertNil(err)
	AssertEqual(len(records), 0)

	_, err = s.Lookup("nope", "CA")
	AssertEqual(err, ErrDatasetNotFound)
}

func TestService_Keys(t *testing.T) {
	s := newTestService(t)

	keys, err := s.Keys("covid")
	AssertNil(err)
	AssertEqual(keys, []string{"CA", "CO"})
}

func TestService_GetDataset(t *testing.T) {
	s := newTestService(t)

	summary, err := s.GetDataset("covid")
	AssertNil(err)
	AssertEqual(summary.Total, 3)
	AssertEqual(summary.States, 2)
	AssertEqual(summary.Schema, []string{"state", "fips", "positive"})

	_, err = s.GetDataset("nope")
	AssertEqual(err, ErrDatasetNotFound)
}

func TestService_Find(t *testing.T) {
	s := newTestService(t)

	matches := []record.Record{}
	err := s.Find("covid", map[string]interface{}{"state": "CA"}, 0, -1, func(r record.Record) {
		matches = append(matches, r)
	})

	AssertNil(err)
	AssertEqual(len(matches), 2)
	AssertEqual(matches[0]["positive"], int64(5))
}

func TestService_FindSkipLimit(t *testing.T) {
	s := newTestService(t)

	matches := []record.Record{}
	err := s.Find("covid", nil, 1, 1, func(r record.Record) {
		matches = append(matches, r)
	})

	AssertNil(err)
	AssertEqual(len(matches), 1)
	AssertEqual(matches[0]["state"], "CO")
}

func TestService_Suggest(t *testing.T) {
	s := newTestService(t)

	suggestions, err := s.Suggest("covid", "CZ", 8)
	AssertNil(err)
	AssertEqual(suggestions, []string{"CA", "CO"})
}
