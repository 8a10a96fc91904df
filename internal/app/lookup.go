package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samvad-hq/urbandict/internal/config"
	"github.com/samvad-hq/urbandict/internal/logger"
	"github.com/samvad-hq/urbandict/internal/render"
	"github.com/samvad-hq/urbandict/pkg/httpclient"
	"github.com/samvad-hq/urbandict/pkg/urban"
)

// Dictionary is the subset of urban.Client the app drives.
type Dictionary interface {
	Lookup(ctx context.Context, req urban.LookupRequest) ([]urban.Entry, error)
	Random(ctx context.Context) ([]urban.Entry, error)
	DefineByID(ctx context.Context, id int64) (urban.Entry, error)
	Tooltip(ctx context.Context, term string) (string, error)
}

// App wires config, the dictionary client and the renderer for one CLI invocation.
type App struct {
	cfg      *config.Config
	dict     Dictionary
	renderer *render.Renderer
	log      logger.Logger
}

// New builds an App backed by a resty-powered urban.Client.
func New(cfg *config.Config, out io.Writer, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	client := urban.New(
		urban.WithBaseURL(cfg.BaseURL),
		urban.WithHTTPClient(httpclient.NewRestyClient(cfg.Timeout)),
		urban.WithLogger(log),
	)
	return NewWithDictionary(cfg, client, out, log)
}

// NewWithDictionary builds an App around an existing Dictionary.
func NewWithDictionary(cfg *config.Config, dict Dictionary, out io.Writer, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if dict == nil {
		return nil, fmt.Errorf("dictionary must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	renderer, err := render.New(out, cfg.Output, cfg.NoColor)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	return &App{cfg: cfg, dict: dict, renderer: renderer, log: log}, nil
}

// Define looks up one page of definitions for term and renders them.
func (a *App) Define(ctx context.Context, term string, page int) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("term must not be empty")
	}

	start := time.Now()
	entries, err := a.dict.Lookup(ctx, urban.LookupRequest{Term: term, Page: page})
	if err != nil {
		return a.fail("define", fmt.Sprintf("%q", term), err)
	}
	a.done("define", start, len(entries))
	return a.renderer.Entries(entries)
}

// Random renders the service's current batch of random definitions.
func (a *App) Random(ctx context.Context) error {
	start := time.Now()
	entries, err := a.dict.Random(ctx)
	if err != nil {
		return a.fail("random", "", err)
	}
	a.done("random", start, len(entries))
	return a.renderer.Entries(entries)
}

// DefineByID renders the definition with the given defid.
func (a *App) DefineByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("defid must be positive, got %d", id)
	}

	start := time.Now()
	entry, err := a.dict.DefineByID(ctx, id)
	if err != nil {
		return a.fail("defid", fmt.Sprintf("%d", id), err)
	}
	a.done("defid", start, 1)
	return a.renderer.Entries([]urban.Entry{entry})
}

// Tooltip renders the tooltip for term, as plain text unless keepHTML is set.
func (a *App) Tooltip(ctx context.Context, term string, keepHTML bool) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("term must not be empty")
	}

	start := time.Now()
	text, err := a.dict.Tooltip(ctx, term)
	if err != nil {
		return a.fail("tooltip", fmt.Sprintf("%q", term), err)
	}
	a.done("tooltip", start, 1)
	return a.renderer.Tooltip(term, text, keepHTML)
}

func (a *App) done(op string, start time.Time, results int) {
	a.log.InfoObj("lookup completed", "lookup", map[string]any{
		"op":         op,
		"results":    results,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}

func (a *App) fail(op, subject string, err error) error {
	a.log.WarnObj("lookup failed", "lookup_error", map[string]any{
		"op":    op,
		"kind":  urban.KindOf(err).String(),
		"error": err.Error(),
	})

	target := op
	if subject != "" {
		target = op + " " + subject
	}
	if errors.Is(err, urban.ErrEmptyResult) {
		return fmt.Errorf("%s: no definitions found: %w", target, err)
	}
	return fmt.Errorf("%s: %w", target, err)
}
