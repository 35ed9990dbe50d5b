package abstractive

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

// TargetWordsPlaceholder in command_args is replaced by the target length.
const TargetWordsPlaceholder = "{target_words}"

var _ Backend = (*commandBackend)(nil)

// commandBackend pipes the text into a local model runner and reads the
// summary from its stdout.
type commandBackend struct {
	executor executor.Executor
	command  string
	args     []string
	timeout  time.Duration
	logger   logger.Logger
}

func (c *commandBackend) Name() string { return "command" }

func (c *commandBackend) Summarize(ctx context.Context, text string, targetWords int) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := make([]string, len(c.args))
	for i, a := range c.args {
		args[i] = strings.ReplaceAll(a, TargetWordsPlaceholder, strconv.Itoa(targetWords))
	}

	c.logger.Debug(ctx, "Running summary command %s (target %d words)", c.command, targetWords)
	out, err := c.executor.Execute(ctx, text, c.command, args...)
	if err != nil {
		return "", fmt.Errorf("summary command: %w", err)
	}

	summary := strings.TrimSpace(out)
	if summary == "" {
		return "", fmt.Errorf("summary command returned no output")
	}
	return summary, nil
}
