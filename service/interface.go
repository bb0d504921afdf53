package service

import (
	"errors"

	"github.com/hoodca/statedb/record"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type Servicer interface {
	ListDatasets() []*DatasetSummary
	GetDataset(name string) (*DatasetSummary, error)
	Keys(dataset string) ([]string, error)
	Lookup(dataset, key string) ([]record.Record, error)
	Count(dataset, key string) (int, error)
	Suggest(dataset, input string, limit int) ([]string, error)
	Find(dataset string, filter map[string]interface{}, skip, limit int64, f func(record.Record)) error
}
