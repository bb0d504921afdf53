package configuration

import "strings"

type Configuration struct {
	HttpAddr      string `usage:"HTTP address"`
	Dir           string `usage:"data directory, every *.csv inside becomes a dataset"`
	Input         string `usage:"load a single CSV file in addition to dir"`
	Statics       string `usage:"statics directory (embedded console by default)"`
	KeyField      string `usage:"field records are grouped by"`
	ForceString   string `usage:"comma separated field names never coerced to numbers"`
	Trim          bool   `usage:"strip whitespace around unquoted fields"`
	ExtraPolicy   string `usage:"policy for rows longer than the header: drop|collect"`
	NormalizeKeys bool   `usage:"upper-case grouping keys"`
	SortBy        string `usage:"reorder each group by this field after load"`
	Interactive   bool   `usage:"run the interactive console instead of the HTTP server"`
	Dataset       string `usage:"dataset the interactive console queries (default: the only one loaded)"`
	Version       bool   `usage:"show version and exit"`
	ShowBanner    bool   `usage:"show big banner"`
	ShowConfig    bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:      ":8080",
		Dir:           "data",
		KeyField:      "state",
		ExtraPolicy:   "drop",
		NormalizeKeys: true,
		ShowBanner:    true,
	}
}

// ForceStringFields splits the comma separated ForceString value. Empty
// means the caller should fall back to the built-in default set.
func (c *Configuration) ForceStringFields() []string {
	if c.ForceString == "" {
		return nil
	}
	fields := []string{}
	for _, f := range strings.Split(c.ForceString, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
