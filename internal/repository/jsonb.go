package repository

import (
	"encoding/json"
	"fmt"
)

// jsonbArg encodes v for a JSONB column. nil becomes SQL NULL.
// Values are marshalled here because pgx sends string and []byte arguments as raw JSON text.
func jsonbArg(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}

// scanJSONB decodes a JSONB column read as bytes. SQL NULL yields nil.
func scanJSONB(b []byte, dst any) error {
	if b == nil {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode jsonb: %w", err)
	}
	return nil
}
