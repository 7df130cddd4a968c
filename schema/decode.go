package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
)

// ErrMissingField reports a required key absent from a payload.
var ErrMissingField = errors.New("missing required field")

var (
	reflector = &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	reflected sync.Map // reflect.Type -> *jsonschema.Schema
)

// JSONSchema returns the JSON Schema reflected from the type of v.
// Every field without omitempty is required.
func JSONSchema(v any) *jsonschema.Schema {
	t := reflect.TypeOf(v)
	if s, ok := reflected.Load(t); ok {
		return s.(*jsonschema.Schema)
	}

	s, _ := reflected.LoadOrStore(t, reflector.Reflect(v))
	return s.(*jsonschema.Schema)
}

// Unmarshal decodes data into v, which should be a *Color or a *Scheme.
// Mistyped values and missing required keys are both errors; v must be
// discarded when an error is returned.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}

	if err := checkRequired(JSONSchema(v), raw, ""); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}

	return nil
}

func checkRequired(s *jsonschema.Schema, raw any, path string) error {
	if s == nil {
		return nil
	}

	switch value := raw.(type) {
	case map[string]any:
		for _, name := range s.Required {
			if field, ok := value[name]; !ok || field == nil {
				return fmt.Errorf("%w: %s", ErrMissingField, join(path, name))
			}
		}

		if s.Properties == nil {
			return nil
		}

		for p := s.Properties.Oldest(); p != nil; p = p.Next() {
			field, ok := value[p.Key]
			if !ok {
				continue
			}

			if err := checkRequired(p.Value, field, join(path, p.Key)); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range value {
			if err := checkRequired(s.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
