package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Parameter is one extracted key/value pair. Values are scalars as
// decoded from the engine's JSON: string, json.Number, bool, or nil.
type Parameter struct {
	Name  string
	Value any
}

// HasValue reports whether the value is worth displaying. Empty
// strings, zero numbers, false, and nil are all skipped silently.
func (p Parameter) HasValue() bool {
	switch v := p.Value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

// DisplayValue renders the value for chat output
func (p Parameter) DisplayValue() string {
	switch v := p.Value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return Num(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Parameters is an ordered set of extracted parameters. Order is the
// order the engine produced them and survives JSON round-trips; a Go
// map would lose it.
type Parameters []Parameter

// Get returns the value for name, if present
func (ps Parameters) Get(name string) (any, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for name, appending if absent
func (ps *Parameters) Set(name string, value any) {
	for i := range *ps {
		if (*ps)[i].Name == name {
			(*ps)[i].Value = value
			return
		}
	}
	*ps = append(*ps, Parameter{Name: name, Value: value})
}

// MarshalJSON writes the parameters as a JSON object in insertion order
func (ps Parameters) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order. Numbers are
// kept as json.Number so the engine's precision is carried verbatim.
func (ps *Parameters) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("extracted_parameters: expected object, got %v", tok)
	}

	out := Parameters{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("extracted_parameters: non-string key %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("parameter %q: %w", key, err)
		}
		out = append(out, Parameter{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*ps = out
	return nil
}
