package main

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *config.Config
	Logger     logger.Logger
	Summarizer summarizer.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" env:"CONDENSE_CONFIG" help:"Path to the YAML config file"`

	Serve     ServeCmd     `cmd:"" help:"Run the HTTP API (and the inbox watcher when paths.input is set)"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a text file or stdin"`
	Watch     WatchCmd     `cmd:"" help:"Summarize documents dropped into the inbox folder"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address, overrides server.addr"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	File       string `arg:"" optional:"" default:"-" help:"Text file to summarize, - for stdin"`
	Percentage *int   `short:"p" help:"Share of sentences to keep, 1-100 (default summary.default_percentage)"`
	Method     string `short:"m" help:"extractive or abstractive (default summary.default_method)"`
	Explain    bool   `short:"e" help:"Print every sentence with its score instead of the summary"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct{}
