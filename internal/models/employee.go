package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is the backend-assigned identifier of an employee. The frontend treats it as opaque text.
type ID string

// IDFromInt converts a database key into an ID.
func IDFromInt(identifier int64) ID {
	return ID(strconv.FormatInt(identifier, 10))
}

// Int64 returns the numeric form of the identifier.
func (id ID) Int64() (int64, error) {
	value, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q is not numeric: %w", string(id), err)
	}

	return value, nil
}

// MarshalJSON writes canonical integers as JSON numbers and anything else, "007" included, as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if value, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(value, 10) == string(id) {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("failed to decode identifier: %w", err)
		}
		*id = ID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("failed to decode identifier: %w", err)
	}
	*id = ID(number.String())

	return nil
}

// Employee represents an employee record.
type Employee struct {
	ID        ID     `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
