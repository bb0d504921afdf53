package record

import "strings"

// Schema is the ordered list of field names taken from the header line.
// It is fixed after creation: it defines field count and order for every
// record mapped against it.
type Schema []string

// NewSchema builds a schema from tokenized header fields. Names are
// trimmed, headers in the wild carry stray spaces around column names.
func NewSchema(fields []string) Schema {
	schema := make(Schema, len(fields))
	for i, f := range fields {
		schema[i] = strings.TrimSpace(f)
	}
	return schema
}
