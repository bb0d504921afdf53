package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/fulldump/biff"
)

func TestStore_Load(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "covid.csv"), []byte("state,positive\nCA,5\nTX,3\nCA,7\n"), 0666)
	os.WriteFile(filepath.Join(dir, "census.csv"), []byte("state,pop\nCA,39000000\n"), 0666)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a dataset"), 0666)

	s := NewStore(&Config{Dir: dir})
	AssertEqual(s.GetStatus(), StatusOpening)

	AssertNil(s.Load())

	AssertEqual(s.GetStatus(), StatusOperating)
	AssertEqual(len(s.Datasets), 2)
	AssertEqual(len(s.Datasets["covid"].Records), 3)
	AssertEqual(s.Datasets["covid"].Index.Count("CA"), 2)
	AssertEqual(s.Datasets["census"].Index.Keys(), []string{"CA"})
}

func TestStore_LoadSingleInput(t *testing.T) {

	filename := filepath.Join(t.TempDir(), "states.csv")
	os.WriteFile(filename, []byte("state,fips\nCA,06\n"), 0666)

	s := NewStore(&Config{Input: filename})

	AssertNil(s.Load())
	AssertEqual(s.Datasets["states"].Index.Lookup("CA")[0]["fips"], "06")
}

func TestStore_LoadBadFileAborts(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "empty.csv"), []byte(""), 0666)

	s := NewStore(&Config{Dir: dir})

	AssertNotNil(s.Load())
	AssertEqual(s.GetStatus(), StatusClosing)
}

func TestStore_StartStop(t *testing.T) {

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "covid.csv"), []byte("state,positive\nCA,5\n"), 0666)

	s := NewStore(&Config{Dir: dir})

	done := make(chan error)
	go func() {
		done <- s.Start()
	}()

	for s.GetStatus() != StatusOperating {
		time.Sleep(time.Millisecond)
	}

	s.Stop()
	AssertNil(<-done)
	AssertEqual(s.GetStatus(), StatusClosing)
}
