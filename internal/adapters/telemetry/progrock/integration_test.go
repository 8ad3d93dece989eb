package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetsync/internal/adapters/telemetry/progrock"
	"go.trai.ch/assetsync/internal/core/domain"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	_, compiled := recorder.Record(ctx, "shaders/a.vert")
	_, err := compiled.Stdout().Write([]byte("Building shader file shaders/a.vert\n"))
	require.NoError(t, err)
	compiled.Log(domain.LogLevelInfo, "compiled")
	compiled.Complete(nil)

	_, failed := recorder.Record(ctx, "shaders/b.frag")
	_, err = failed.Stderr().Write([]byte("b.frag:1: error\n"))
	require.NoError(t, err)
	failed.Complete(errors.New("exit status 1"))

	_, cached := recorder.Record(ctx, "shaders/c.comp")
	cached.Cached()

	require.NoError(t, recorder.Close())
}

func TestRecorder_SameNameTwice(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	_, first := recorder.Record(ctx, "textures/a.png")
	first.Complete(nil)
	_, second := recorder.Record(ctx, "textures/a.png")
	second.Complete(nil)

	assert.NotSame(t, first, second)
	require.NoError(t, recorder.Close())
}
