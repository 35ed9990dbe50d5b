package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/nguyentantai21042004/condense/cmd/condense"
	"github.com/nguyentantai21042004/condense/internal/model"
)

const animals = "Cats are mammals. Dogs are mammals too. The sky is blue."

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(), args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestMain_Run_Help(t *testing.T) {
	stdout, _, err := run(t, "", "--help")
	require.NoError(t, err)

	for _, cmd := range []string{"serve", "summarize", "watch"} {
		assert.Contains(t, stdout, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, stdout, "Usage:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	_, _, err := run(t, "")
	assert.ErrorContains(t, err, "no command specified")
}

func TestCmdSummarize(t *testing.T) {
	t.Run("reads stdin", func(t *testing.T) {
		stdout, _, err := run(t, animals, "summarize", "-p", "50")
		require.NoError(t, err)
		assert.Equal(t, "Cats are mammals.\n", stdout)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.txt")
		require.NoError(t, os.WriteFile(path, []byte(animals), 0644))

		stdout, _, err := run(t, "", "summarize", "--percentage", "50", path)
		require.NoError(t, err)
		assert.Equal(t, "Cats are mammals.\n", stdout)
	})

	t.Run("uses config defaults", func(t *testing.T) {
		cfg := writeConfig(t, "summary:\n  default_percentage: 100\n")

		stdout, _, err := run(t, animals, "--config", cfg, "summarize")
		require.NoError(t, err)
		assert.Equal(t, animals+"\n", stdout)
	})

	t.Run("explain lists every sentence", func(t *testing.T) {
		stdout, _, err := run(t, animals, "summarize", "-p", "50", "--explain")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "SCORE")
		assert.Contains(t, lines[1], "*")
		assert.Contains(t, lines[1], "Cats are mammals.")
		assert.NotContains(t, lines[3], "*")
	})

	t.Run("rejects zero percentage", func(t *testing.T) {
		_, _, err := run(t, animals, "summarize", "-p", "0")
		assert.ErrorIs(t, err, model.ErrInvalidParameter)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, _, err := run(t, "  \n ", "summarize")
		assert.ErrorIs(t, err, model.ErrEmptyInput)
	})

	t.Run("abstractive without backend", func(t *testing.T) {
		_, _, err := run(t, animals, "summarize", "-m", "abstractive")
		assert.ErrorIs(t, err, model.ErrBackendUnavailable)
	})

	t.Run("command backend runs in work_dir", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		cfg := writeConfig(t, fmt.Sprintf("abstractive:\n  backend: command\n  command: pwd\n  work_dir: %s\n", dir))

		stdout, _, err := run(t, animals, "--config", cfg, "summarize", "-m", "abstractive")
		require.NoError(t, err)
		assert.Equal(t, dir+"\n", stdout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "summarize", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func TestMain_Run_BadConfig(t *testing.T) {
	cfg := writeConfig(t, "summary:\n  default_percentage: 250\n")

	_, stderr, err := run(t, animals, "--config", cfg, "summarize")
	assert.ErrorContains(t, err, "failed to load config")
	assert.Contains(t, stderr, "Hint:")
}

func TestCmdWatch(t *testing.T) {
	t.Run("requires an input folder", func(t *testing.T) {
		_, _, err := run(t, "", "watch")
		assert.ErrorContains(t, err, "paths.input")
	})

	t.Run("summarizes inbox documents", func(t *testing.T) {
		root := t.TempDir()
		input := filepath.Join(root, "inbox")
		output := filepath.Join(root, "out")
		require.NoError(t, os.MkdirAll(input, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(input, "pets.txt"), []byte(animals), 0644))

		cfg := writeConfig(t, fmt.Sprintf(`summary:
  default_percentage: 50
paths:
  input: %s
  processing: %s
  output: %s
  archived: %s
logging:
  level: error
`, input, filepath.Join(root, "processing"), output, filepath.Join(root, "archived")))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- main.NewMain().Run(ctx, []string{"--config", cfg, "watch"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		}()

		summaryPath := filepath.Join(output, "pets.summary.md")
		require.Eventually(t, func() bool {
			_, err := os.Stat(filepath.Join(root, "archived", "pets.txt"))
			return err == nil
		}, 10*time.Second, 20*time.Millisecond)

		data, err := os.ReadFile(summaryPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# pets")
		assert.Contains(t, string(data), "Cats are mammals.")

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop")
		}
	})
}

func TestCmdServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- main.NewMain().Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
