package record

// Record maps every schema field name to its coerced value.
type Record map[string]any

// Policies for rows longer than the schema.
const (
	ExtraDrop    = "drop"    // extra trailing tokens are discarded
	ExtraCollect = "collect" // extra tokens kept raw under ExtraField
)

// ExtraField is the synthetic name extra tokens are collected under when the
// mapper runs with ExtraCollect.
const ExtraField = "_extra"

// Mapper builds records from raw rows against a fixed schema. It never
// fails: short rows are padded with empty strings, long rows are handled
// per Extra policy.
type Mapper struct {
	Schema  Schema
	Coercer *Coercer
	Extra   string
}

func NewMapper(schema Schema, coercer *Coercer) *Mapper {
	return &Mapper{
		Schema:  schema,
		Coercer: coercer,
		Extra:   ExtraDrop,
	}
}

// Map coerces each token of raw into the record field named by its position.
func (m *Mapper) Map(raw []string) Record {

	r := Record{}

	for i, field := range m.Schema {
		value := ""
		if i < len(raw) {
			value = raw[i]
		}
		r[field] = m.Coercer.Value(field, value)
	}

	if m.Extra == ExtraCollect && len(raw) > len(m.Schema) {
		extra := make([]string, len(raw)-len(m.Schema))
		copy(extra, raw[len(m.Schema):])
		r[ExtraField] = extra
	}

	return r
}
