package csvline

import "strings"

// Splitter splits one raw CSV line into fields. Quoting uses double quotes
// with doubled-quote escaping. Multi-line quoted fields are not supported,
// each call sees exactly one line.
type Splitter struct {
	// Trim strips surrounding whitespace from every emitted field. Default
	// is to preserve fields exactly as written.
	Trim bool
}

// Split scans the line with an in-quotes flag and an accumulator.
// An unbalanced quote stays open through the end of the line, no error.
// The final accumulator is always flushed, so "" yields [""].
func (s *Splitter) Split(line string) []string {

	fields := []string{}
	cur := strings.Builder{}
	inQuotes := false

	flush := func() {
		f := cur.String()
		if s.Trim {
			f = strings.TrimSpace(f)
		}
		fields = append(fields, f)
		cur.Reset()
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					// escaped quote
					cur.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteByte(c)
			}
			continue
		}
		switch c {
		case ',':
			flush()
		case '"':
			inQuotes = true
		default:
			cur.WriteByte(c)
		}
	}

	flush()

	return fields
}

// Split tokenizes with the default policy (fields preserved verbatim).
func Split(line string) []string {
	s := &Splitter{}
	return s.Split(line)
}
