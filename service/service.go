package service

import (
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/hoodca/statedb/loader"
	"github.com/hoodca/statedb/record"
	"github.com/hoodca/statedb/store"
	"github.com/hoodca/statedb/utils"
)

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{
		store: s,
	}
}

// DatasetSummary is the external view of a loaded dataset.
type DatasetSummary struct {
	Name   string   `json:"name"`
	LoadID string   `json:"load_id"`
	Total  int      `json:"total"`
	States int      `json:"states"`
	Schema []string `json:"schema"`
}

func summarize(dataset *loader.Dataset) *DatasetSummary {
	return &DatasetSummary{
		Name:   dataset.Name,
		LoadID: dataset.LoadID,
		Total:  len(dataset.Records),
		States: len(dataset.Index.Keys()),
		Schema: dataset.Schema,
	}
}

func (s *Service) ListDatasets() []*DatasetSummary {
	result := []*DatasetSummary{}
	for _, name := range utils.GetKeys(s.store.Datasets) {
		result = append(result, summarize(s.store.Datasets[name]))
	}
	return result
}

func (s *Service) GetDataset(name string) (*DatasetSummary, error) {
	dataset, exists := s.store.Datasets[name]
	if !exists {
		return nil, ErrDatasetNotFound
	}
	return summarize(dataset), nil
}

// Keys returns every state code known to the dataset, ascending.
func (s *Service) Keys(dataset string) ([]string, error) {
	d, exists := s.store.Datasets[dataset]
	if !exists {
		return nil, ErrDatasetNotFound
	}
	return d.Index.Keys(), nil
}

// Lookup returns the records grouped under key. An unknown key is not an
// error, the result is just empty.
func (s *Service) Lookup(dataset, key string) ([]record.Record, error) {
	d, exists := s.store.Datasets[dataset]
	if !exists {
		return nil, ErrDatasetNotFound
	}
	return d.Index.Lookup(key), nil
}

// Count returns how many records are grouped under key.
func (s *Service) Count(dataset, key string) (int, error) {
	d, exists := s.store.Datasets[dataset]
	if !exists {
		return 0, ErrDatasetNotFound
	}
	return d.Index.Count(key), nil
}

// Suggest returns up to limit state codes close to input, to hint after a
// failed lookup.
func (s *Service) Suggest(dataset, input string, limit int) ([]string, error) {
	d, exists := s.store.Datasets[dataset]
	if !exists {
		return nil, ErrDatasetNotFound
	}
	return d.Index.Suggest(input, limit), nil
}

// Find scans the dataset in file order calling f with every record matching
// filter, honoring skip and limit. Limit < 0 means no limit.
func (s *Service) Find(dataset string, filter map[string]interface{}, skip, limit int64, f func(record.Record)) error {

	d, exists := s.store.Datasets[dataset]
	if !exists {
		return ErrDatasetNotFound
	}

	hasFilter := len(filter) > 0

	for _, rec := range d.Records {

		if limit == 0 {
			break
		}

		if hasFilter {
			match, err := connor.Match(filter, map[string]interface{}(rec))
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		f(rec)
	}

	return nil
}
