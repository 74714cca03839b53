package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/instant/internal/adapters/telemetry"
	"go.trai.ch/instant/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Telemetry = (*telemetry.NoOp)(nil)
	var _ ports.Vertex = telemetry.NoOpVertex{}
}

func TestNoOp_Record(t *testing.T) {
	t.Parallel()

	tel := telemetry.NewNoOp()
	ctx := context.Background()

	newCtx, vertex := tel.Record(ctx, "store")
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	vertex.Cached()
	vertex.Complete(errors.New("ignored"))
	assert.NoError(t, tel.Close())
}
