package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/hoodca/statedb/csvline"
	"github.com/hoodca/statedb/record"
	"github.com/hoodca/statedb/stateindex"
)

// ErrNoHeader is returned when the input has no header line, so no schema
// can be established.
var ErrNoHeader = errors.New("empty input: no header line")

// Options carries the load policies. Zero value is usable: preserve field
// whitespace, drop extra tokens, group by "state" upper-cased, no forced
// strings beyond the defaults are applied by the caller.
type Options struct {
	KeyField      string   // grouping field, default "state"
	ForceString   []string // field names exempt from numeric coercion
	Trim          bool     // strip whitespace around tokenized fields
	Extra         string   // record.ExtraDrop or record.ExtraCollect
	NormalizeKeys bool     // upper-case grouping keys
	SortBy        string   // reorder each group by this field after load, "" keeps append order
}

func (o *Options) setDefaults() {
	if o.KeyField == "" {
		o.KeyField = "state"
	}
	if o.ForceString == nil {
		o.ForceString = record.DefaultForceString
	}
	if o.Extra == "" {
		o.Extra = record.ExtraDrop
	}
}

// Dataset is one fully loaded CSV file: the schema, every mapped record in
// file order, and the records grouped by the key field. Read-only once Load
// returns.
type Dataset struct {
	Name     string
	Filename string
	LoadID   string
	Schema   record.Schema
	Records  []record.Record
	Index    *stateindex.Index
}

// Load reads r line by line. The first line establishes the schema, every
// following non-blank line is tokenized, mapped and indexed. One pass, no
// retries.
func Load(name string, r io.Reader, options *Options) (*Dataset, error) {

	if options == nil {
		options = &Options{}
	}
	options.setDefaults()

	splitter := &csvline.Splitter{Trim: options.Trim}

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, ErrNoHeader
	}

	schema := record.NewSchema(splitter.Split(scanner.Text()))

	mapper := record.NewMapper(schema, record.NewCoercer(options.ForceString...))
	mapper.Extra = options.Extra

	index := stateindex.NewIndex(&stateindex.Options{
		KeyField:      options.KeyField,
		NormalizeKeys: options.NormalizeKeys,
	})

	dataset := &Dataset{
		Name:    name,
		LoadID:  uuid.NewString(),
		Schema:  schema,
		Records: []record.Record{},
		Index:   index,
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec := mapper.Map(splitter.Split(line))
		dataset.Records = append(dataset.Records, rec)
		index.Insert(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line: %w", err)
	}

	if options.SortBy != "" {
		index.SortGroups(options.SortBy)
	}

	return dataset, nil
}

// LoadFile opens filename and loads it as a dataset named name. A missing
// or unreadable file is fatal, there is no partial dataset.
func LoadFile(name, filename string, options *Options) (*Dataset, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("file unavailable: %w", err)
	}
	defer f.Close()

	dataset, err := Load(name, f, options)
	if err != nil {
		return nil, fmt.Errorf("load '%s': %w", filename, err)
	}
	dataset.Filename = filename

	return dataset, nil
}
