package symbol

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec declares that the symbol starting at StartIndex occupies Span
// consecutive tile slots.
type Spec struct {
	StartIndex int
	Span       int
}

// EndIndex returns the tile index one past the last tile of the symbol.
func (s Spec) EndIndex() int {
	return s.StartIndex + s.Span
}

// Specs is a symbol specification table, looked up by start tile index.
// Entries are not validated against each other; overlap handling is left
// to the consumer.
type Specs []Spec

// Find returns the spec starting at the given tile index, if any.
func (s Specs) Find(startIndex int) (Spec, bool) {
	for _, spec := range s {
		if spec.StartIndex == startIndex {
			return spec, true
		}
	}
	return Spec{}, false
}

// InvalidSpecStringError is returned when a specification entry does not
// match the "start:span" grammar.
type InvalidSpecStringError struct {
	Spec string
}

func (e InvalidSpecStringError) Error() string {
	return fmt.Sprintf("invalid symbol spec: `%s`", e.Spec)
}

var specRE = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|\d+):(\d+)$`)

// ParseSpec parses a "start:span" entry. The start index is decimal unless
// it carries an explicit 0x prefix; a leading zero does not make it octal.
// The span is decimal.
func ParseSpec(s string) (Spec, error) {
	m := specRE.FindStringSubmatch(s)
	if m == nil {
		return Spec{}, InvalidSpecStringError{Spec: s}
	}

	var (
		start int
		err   error
	)
	if strings.HasPrefix(m[1], "0x") || strings.HasPrefix(m[1], "0X") {
		var v int64
		if v, err = strconv.ParseInt(m[1][2:], 16, 0); err == nil {
			start = int(v)
		}
	} else {
		start, err = strconv.Atoi(m[1])
	}
	if err != nil {
		return Spec{}, InvalidSpecStringError{Spec: s}
	}

	span, err := strconv.Atoi(m[2])
	if err != nil {
		return Spec{}, InvalidSpecStringError{Spec: s}
	}

	return Spec{StartIndex: start, Span: span}, nil
}

// LoadSpecsFile reads a symbol specification file; a YAML mapping of
// symbol names to "start:span" entries. The names are only documentation,
// the table is keyed by start index.
func LoadSpecsFile(path string) (Specs, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol specs file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, err
	}

	specs := make(Specs, 0, len(entries))
	for _, s := range entries {
		spec, err := ParseSpec(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}
