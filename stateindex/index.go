package stateindex

import (
	"sort"
	"strings"

	"github.com/google/btree"

	"github.com/hoodca/statedb/record"
)

// Options should grow attributes like unique, multikey, etc. if this index
// ever stops being a plain grouping.
type Options struct {
	// KeyField is the record field whose value groups records together.
	KeyField string

	// NormalizeKeys upper-cases key values so "ca" and "CA" share a group.
	NormalizeKeys bool
}

// Index groups records by the value of a designated key field. Groups keep
// insertion order. Built append-only during load, read-only afterwards, so
// no locking here.
type Index struct {
	options *Options
	groups  map[string][]record.Record
	keys    *btree.BTreeG[string]
}

func NewIndex(options *Options) *Index {
	return &Index{
		options: options,
		groups:  map[string][]record.Record{},
		keys:    btree.NewOrderedG[string](32),
	}
}

// Insert appends r to the group keyed by its key field. Records without a
// string value for the key field are not indexed.
func (i *Index) Insert(r record.Record) {

	value, exists := r[i.options.KeyField]
	if !exists {
		return
	}

	key, ok := value.(string)
	if !ok || key == "" {
		return
	}

	if i.options.NormalizeKeys {
		key = strings.ToUpper(key)
	}

	if _, exists := i.groups[key]; !exists {
		i.keys.ReplaceOrInsert(key)
	}
	i.groups[key] = append(i.groups[key], r)
}

// Lookup returns the group for key, in insertion order. Unknown keys return
// an empty sequence, never an error.
func (i *Index) Lookup(key string) []record.Record {
	if i.options.NormalizeKeys {
		key = strings.ToUpper(key)
	}
	return i.groups[key]
}

// Keys returns every known key in ascending order.
func (i *Index) Keys() []string {
	keys := make([]string, 0, i.keys.Len())
	i.keys.Ascend(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Count returns the number of records grouped under key.
func (i *Index) Count(key string) int {
	if i.options.NormalizeKeys {
		key = strings.ToUpper(key)
	}
	return len(i.groups[key])
}

// Suggest returns up to limit keys sharing the first character of input,
// for "did you mean" hints on failed lookups.
func (i *Index) Suggest(input string, limit int) []string {
	if input == "" || limit <= 0 {
		return nil
	}
	if i.options.NormalizeKeys {
		input = strings.ToUpper(input)
	}

	prefix := input[:1]
	suggestions := []string{}
	i.keys.AscendGreaterOrEqual(prefix, func(key string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		suggestions = append(suggestions, key)
		return len(suggestions) < limit
	})
	return suggestions
}

// SortGroups reorders every group by the given field, best effort: numeric
// values sort numerically, strings lexicographically, anything else keeps
// its relative position.
func (i *Index) SortGroups(field string) {
	for _, group := range i.groups {
		sort.SliceStable(group, func(a, b int) bool {
			return less(group[a][field], group[b][field])
		})
	}
}

func less(a, b any) bool {
	na, aNum := asFloat(a)
	nb, bNum := asFloat(b)
	if aNum && bNum {
		return na < nb
	}
	sa, aStr := a.(string)
	sb, bStr := b.(string)
	if aStr && bStr {
		return sa < sb
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
