package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/nguyentantai21042004/condense/internal/model"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	text, err := c.readInput(deps.Stdin)
	if err != nil {
		return err
	}

	percentage := deps.Config.Summary.DefaultPercentage
	if c.Percentage != nil {
		percentage = *c.Percentage
	}
	method := deps.Config.Summary.DefaultMethod
	if c.Method != "" {
		method = c.Method
	}

	if c.Explain {
		return c.explain(deps, text, percentage)
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, model.Request{
		Method:     model.Method(method),
		Percentage: percentage,
		Text:       text,
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}

func (c *SummarizeCmd) readInput(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", c.File, err)
	}
	return string(data), nil
}

// explain prints one row per sentence; selected sentences are starred.
func (c *SummarizeCmd) explain(deps *Dependencies, text string, percentage int) error {
	if c.Method != "" {
		if m, err := model.ParseMethod(c.Method); err != nil || m != model.MethodExtractive {
			return fmt.Errorf("%w: --explain only applies to extractive summaries", model.ErrInvalidParameter)
		}
	}

	ranked, err := deps.Summarizer.Rank(deps.Ctx, text, percentage)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tKEEP\tSENTENCE")
	for _, s := range ranked {
		keep := ""
		if s.Selected {
			keep = "*"
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\n", s.Index, s.Score, keep, s.Original)
	}
	return tw.Flush()
}
