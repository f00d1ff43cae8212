package requestid_test

import (
	"context"
	"testing"

	"github.com/UnknownOlympus/ems/internal/lib/requestid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))

	ctx := requestid.WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", requestid.FromContext(ctx))
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "given", requestid.Ensure("given"))

	generated := requestid.Ensure("")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
}
