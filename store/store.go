package store

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/hoodca/statedb/loader"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	// Dir is scanned for *.csv files, each one becomes a dataset named by
	// its base name.
	Dir string

	// Input optionally loads one extra file outside Dir.
	Input string

	// Loader policies applied to every dataset.
	Loader *loader.Options
}

// Store holds every loaded dataset. Datasets are loaded once at startup and
// read-only afterwards, queries need no locking.
type Store struct {
	config   *Config
	status   string
	Datasets map[string]*loader.Dataset
	exit     chan struct{}
}

func NewStore(config *Config) *Store {
	return &Store{
		config:   config,
		status:   StatusOpening,
		Datasets: map[string]*loader.Dataset{},
		exit:     make(chan struct{}),
	}
}

func (s *Store) GetStatus() string {
	return s.status
}

// Load reads every dataset in one pass. Any unreadable or headerless file
// aborts the load, no partial state is served.
func (s *Store) Load() error {

	if s.config.Dir != "" {
		fmt.Printf("Loading datasets from %s...\n", s.config.Dir) // todo: move to logger
		err := filepath.WalkDir(s.config.Dir, func(filename string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
				return nil
			}

			return s.loadFile(datasetName(filename), filename)
		})
		if err != nil {
			s.status = StatusClosing
			return err
		}
	}

	if s.config.Input != "" {
		err := s.loadFile(datasetName(s.config.Input), s.config.Input)
		if err != nil {
			s.status = StatusClosing
			return err
		}
	}

	s.status = StatusOperating

	return nil
}

func (s *Store) loadFile(name, filename string) error {

	if _, exists := s.Datasets[name]; exists {
		return fmt.Errorf("dataset '%s' already loaded", name)
	}

	t0 := time.Now()
	dataset, err := loader.LoadFile(name, filename, s.config.Loader)
	if err != nil {
		return err
	}
	fmt.Println(name, len(dataset.Records), "records", time.Since(t0)) // todo: move to logger

	s.Datasets[name] = dataset

	return nil
}

// Start blocks until Stop is called. The load itself runs synchronously
// first so no query ever observes a half-built dataset.
func (s *Store) Start() error {

	err := s.Load()
	if err != nil {
		return err
	}

	<-s.exit

	return nil
}

func (s *Store) Stop() {
	s.status = StatusClosing
	close(s.exit)
}

func datasetName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
