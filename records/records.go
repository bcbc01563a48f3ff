package records

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a single YAML or JSON document from r. An empty document
// decodes to nil.
func Decode(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			tracer().Debugf("records: empty document")
			return nil, nil
		}
		return nil, fmt.Errorf("records: cannot decode document: %w", err)
	}
	if seq, ok := doc.([]any); ok {
		tracer().Debugf("records: decoded %d records", len(seq))
	}
	return doc, nil
}

// Load opens the file at path and decodes it.
func Load(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	defer f.Close()
	tracer().Infof("records: loading %s", path)
	return Decode(f)
}

// ParseID interprets a command-line token as a record id, using the same
// rules as for documents: integers become int, floats float64, booleans
// bool, "null" and "~" become nil, everything else is taken as a string.
func ParseID(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case int, float64, bool, nil:
		return v
	}
	return s
}
