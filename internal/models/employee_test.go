package models_test

import (
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	t.Parallel()

	var fromNumber, fromString models.Employee
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"id": "emp-42"}`), &fromString))

	assert.Equal(t, models.ID("42"), fromNumber.ID)
	assert.Equal(t, models.ID("emp-42"), fromString.ID)
}

func TestID_Marshal(t *testing.T) {
	t.Parallel()

	numeric, err := json.Marshal(models.Employee{ID: "42", FirstName: "A", LastName: "B", Email: "c@d.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"firstName":"A","lastName":"B","email":"c@d.com"}`, string(numeric))

	opaque, err := json.Marshal(models.Employee{ID: "emp-42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"emp-42","firstName":"","lastName":"","email":""}`, string(opaque))

	for _, id := range []models.ID{"007", "+5", "-0"} {
		encoded, encodeErr := json.Marshal(models.Employee{ID: id})
		require.NoError(t, encodeErr, "id %q", id)
		assert.JSONEq(t, `{"id":"`+string(id)+`","firstName":"","lastName":"","email":""}`, string(encoded))
	}

	negative, err := json.Marshal(models.Employee{ID: "-12"})
	require.NoError(t, err)
	assert.Contains(t, string(negative), `"id":-12`)

	withoutID, err := json.Marshal(models.Employee{FirstName: "A"})
	require.NoError(t, err)
	assert.NotContains(t, string(withoutID), `"id"`)
}

func TestID_Int64(t *testing.T) {
	t.Parallel()

	value, err := models.ID("17").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(17), value)
	assert.Equal(t, models.ID("17"), models.IDFromInt(17))

	_, err = models.ID("abc").Int64()
	require.Error(t, err)
}
