package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/condense/internal/httpapi"
	"github.com/nguyentantai21042004/condense/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	log := deps.Logger

	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	var inbox watcher.Watcher
	if cfg.Paths.Input != "" {
		w, err := newInbox(deps)
		if err != nil {
			return err
		}
		defer w.Stop()
		inbox = w
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      httpapi.New(cfg.Server, deps.Summarizer, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return deps.Ctx },
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	g.Go(func() error {
		log.Info(ctx, "Listening on %s", ln.Addr())
		log.Info(ctx, "Endpoints:")
		log.Info(ctx, "  POST /summarize")
		log.Info(ctx, "  GET  /health")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if inbox != nil {
		g.Go(func() error {
			if err := inbox.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
