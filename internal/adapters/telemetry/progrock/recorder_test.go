package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/instant/internal/adapters/telemetry/progrock"
	"go.trai.ch/instant/internal/core/ports"
)

func TestNew(t *testing.T) {
	var recorder ports.Telemetry = progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, store := recorder.Record(ctx, "store instant execution state")
	_, err := store.Stdout().Write([]byte("stored :a (42 bytes)\n"))
	require.NoError(t, err)
	store.Complete(nil)

	_, load := recorder.Record(ctx, "load instant execution state")
	load.Cached()
	load.Complete(errors.New("corrupt cache entry"))

	assert.NoError(t, recorder.Close())
}
