package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/rosetta"
	"github.com/aretw0/rosetta/internal/presentation/tui"
)

// RunRender renders the full catalog and writes it to stdout.
// In watch mode it keeps re-rendering as the source repository changes.
func RunRender(opts Options) error {
	logger := CreateLogger(opts.Debug)

	if opts.Watch {
		return runRenderWatch(opts, logger)
	}

	cat, err := CreateCatalog(opts, logger)
	if err != nil {
		return err
	}
	return renderOnce(context.Background(), cat, opts)
}

// runRenderWatch rebuilds the catalog on every source change.
// The catalog value is immutable, so a change means a fresh build rather than
// an in-place mutation.
func runRenderWatch(opts Options, logger *slog.Logger) error {
	tui.PrintBanner()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	for {
		cat, err := CreateCatalog(opts, logger)
		if err != nil {
			logger.Error("Catalog initialization failed", "err", err)
			select {
			case <-sigCtx.Done():
				return nil
			case <-time.After(2 * time.Second):
				continue
			}
		}

		if err := renderOnce(sigCtx, cat, opts); err != nil {
			logger.Error("Render failed", "err", err)
		}

		events, err := cat.Watch(sigCtx)
		if err != nil {
			return fmt.Errorf("watch mode unavailable: %w", err)
		}

		printSystemMessage("Waiting for changes...")

		select {
		case <-sigCtx.Done():
			logger.Info("Stopping watcher", "signal", sigCtx.Signal())
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			printSystemMessage("Change detected in '%s'.", event)
			// Delay slightly to ensure the file system is stable
			time.Sleep(100 * time.Millisecond)
		}
	}
}

func renderOnce(ctx context.Context, cat *rosetta.Catalog, opts Options) error {
	doc, err := cat.RenderAll(ctx, opts.Format)
	if err != nil {
		return err
	}

	// Style markdown for humans; pipes and redirects get the raw document.
	if opts.Format == rosetta.FormatMarkdown && !opts.Plain && tui.IsInteractive() {
		render := tui.NewRenderer()
		if styled, rerr := render(doc); rerr == nil {
			doc = styled
		}
	}

	fmt.Fprint(os.Stdout, doc)
	return nil
}
