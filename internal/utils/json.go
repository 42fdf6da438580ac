package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeStrict unmarshals data into target, rejecting unknown fields
func DecodeStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}
