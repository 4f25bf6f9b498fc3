package services

import "encoding/json"

// DecodeObject splits a JSON object into its raw members. Anything other than
// an object is an error.
func DecodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

// OptionalField decodes fields[key] into a T. A missing key, an explicit null
// and a value of the wrong JSON type all yield nil.
func OptionalField[T any](fields map[string]json.RawMessage, key string) *T {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var value *T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}
