package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutePipesStdin(t *testing.T) {
	out, err := New().Execute(context.Background(), "hello summary", "cat")
	require.NoError(t, err)
	assert.Equal(t, "hello summary", out)
}

func TestExecuteReportsStderr(t *testing.T) {
	_, err := New().Execute(context.Background(), "", "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 'sh' failed")
	assert.Contains(t, err.Error(), "stderr: broken")
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := NewInDir(dir).Execute(context.Background(), "", "pwd")
	require.NoError(t, err)
	assert.Contains(t, out, dir)
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Execute(ctx, "", "sleep", "5")
	assert.Error(t, err)
}
