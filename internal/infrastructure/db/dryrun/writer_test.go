package dryrun

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_UpsertLogsAndSucceeds(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	err := w.Upsert(context.Background(), "users", "user_antony", map[string]any{"email": "antony@gmail.com"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"collection":"users"`)
	assert.Contains(t, buf.String(), `"id":"user_antony"`)
	assert.Contains(t, buf.String(), `"email":"antony@gmail.com"`)
}

func TestWriter_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(zerolog.New(&buf).Level(zerolog.InfoLevel))

	require.NoError(t, w.Upsert(context.Background(), "templates", "t", nil))
	assert.Empty(t, buf.String())
}
