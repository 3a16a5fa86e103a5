package template

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/silence-cli/create-silence/pkg/models"
)

// dependencyPin is a single devDependency injected for a preprocessor.
type dependencyPin struct {
	Name    string
	Version string
}

// preprocessorDependencies lists the devDependencies each preprocessor needs.
var preprocessorDependencies = map[models.Preprocessor][]dependencyPin{
	models.PreprocessorSass: {
		{Name: "sass", Version: "^1.83.4"},
		{Name: "sass-loader", Version: "^16.0.4"},
	},
	models.PreprocessorLess: {
		{Name: "less", Version: "^4.2.2"},
		{Name: "less-loader", Version: "^12.2.0"},
	},
}

// manifestIndent matches the indentation of the shipped templates.
const manifestIndent = "    "

// PatchManifest rewrites package.json content: name is always replaced and
// the preprocessor's devDependencies are added. Key order is preserved and
// new keys are appended.
func PatchManifest(data []byte, name string, pre models.Preprocessor) ([]byte, error) {
	var pkg orderedObject
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := pkg.Set("name", name); err != nil {
		return nil, err
	}

	if pins := preprocessorDependencies[pre]; len(pins) > 0 {
		var dev orderedObject
		if raw, ok := pkg.Get("devDependencies"); ok {
			if err := json.Unmarshal(raw, &dev); err != nil {
				return nil, fmt.Errorf("%w: devDependencies: %v", ErrInvalidManifest, err)
			}
		}
		for _, pin := range pins {
			if err := dev.Set(pin.Name, pin.Version); err != nil {
				return nil, err
			}
		}
		if err := pkg.Set("devDependencies", &dev); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", manifestIndent)
	if err := enc.Encode(&pkg); err != nil {
		return nil, fmt.Errorf("encode package.json: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonMember is one key/value pair of an orderedObject.
type jsonMember struct {
	Key   string
	Value json.RawMessage
}

// orderedObject is a JSON object that keeps member order across a decode
// and encode round trip. Nested values are kept as raw JSON.
type orderedObject struct {
	members []jsonMember
}

// Get returns the raw value stored under key.
func (o *orderedObject) Get(key string) (json.RawMessage, bool) {
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place, or appends it.
func (o *orderedObject) Set(key string, value any) error {
	raw, err := marshalNoEscape(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	o.set(key, raw)
	return nil
}

func (o *orderedObject) set(key string, raw json.RawMessage) {
	for i := range o.members {
		if o.members[i].Key == key {
			o.members[i].Value = raw
			return
		}
	}
	o.members = append(o.members, jsonMember{Key: key, Value: raw})
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate keys keep the
// position of the first occurrence and the value of the last.
func (o *orderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	o.members = o.members[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		o.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping and without the trailing
// newline added by json.Encoder.
func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
