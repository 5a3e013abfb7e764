package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownContextKeepsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	parent, cancel := context.WithCancel(logging.IntoContext(context.Background(), logger))

	ctx, stop := shutdownContext(parent)
	defer stop()

	require.Same(t, logger, logging.FromContext(ctx))
	logging.FromContext(ctx).Debug("seeding")
	assert.Contains(t, buf.String(), `"msg":"seeding"`)

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
