// Package app wires address collection, the lookup and report rendering
// into a single run.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mark3labs/homeinfo/internal/address"
	"github.com/mark3labs/homeinfo/internal/lookup"
	"github.com/mark3labs/homeinfo/internal/ui"
)

// field describes one address component: how it is asked for and checked.
type field struct {
	flag      string
	label     string
	normalize func(string) string
	validate  func(string) error
	value     *string
}

// App runs one lookup: collect the address, query the model, print the
// report.
type App struct {
	opts      Options
	retriever *lookup.Retriever
	renderer  *ui.Renderer
	logger    *log.Logger
}

// New creates an App. Options.Completer must be set.
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.PromptOut == nil {
		opts.PromptOut = opts.Out
	}
	return &App{
		opts:      opts,
		retriever: lookup.NewRetriever(opts.Completer, opts.Logger),
		renderer:  ui.NewRenderer(opts.Out, opts.Format),
		logger:    opts.Logger,
	}
}

// Run performs the lookup. Invalid address fields given up front fail before
// any request is made; prompted fields are re-asked until valid.
func (a *App) Run(ctx context.Context) error {
	q, err := a.collect()
	if err != nil {
		return err
	}
	a.logger.Debug("looking up property", "address", q.String(), "detailed", a.opts.Detailed)

	info, err := a.lookup(ctx, q)
	if err != nil {
		return err
	}
	return a.renderer.Render(info)
}

func (a *App) collect() (address.Query, error) {
	q := a.opts.Query
	fields := []field{
		{"street", "Enter street address (e.g., 123 Main Street)", nil, address.ValidateStreet, &q.Street},
		{"city", "Enter city", nil, address.ValidateCity, &q.City},
		{"state", "Enter state (2-letter code)", address.NormalizeState, address.ValidateState, &q.State},
		{"zip", "Enter ZIP code", nil, address.ValidateZip, &q.Zip},
	}

	var prompter *ui.Prompter
	for _, f := range fields {
		if *f.value != "" {
			*f.value = normalizeGiven(*f.value, f.normalize)
			if err := f.validate(*f.value); err != nil {
				return address.Query{}, fmt.Errorf("--%s %q: %w", f.flag, *f.value, err)
			}
			continue
		}

		if a.opts.In == nil {
			return address.Query{}, fmt.Errorf("--%s is required when input is not interactive", f.flag)
		}
		if prompter == nil {
			prompter = ui.NewPrompter(a.opts.In, a.opts.PromptOut)
		}
		v, err := prompter.Ask(f.label, f.normalize, f.validate)
		if err != nil {
			return address.Query{}, err
		}
		*f.value = v
	}

	if prompter != nil {
		fmt.Fprintln(a.opts.PromptOut)
	}
	return q.Normalize(), nil
}

func normalizeGiven(v string, normalize func(string) string) string {
	v = strings.TrimSpace(v)
	if normalize != nil {
		v = normalize(v)
	}
	return v
}

func (a *App) lookup(ctx context.Context, q address.Query) (*lookup.HomeInformation, error) {
	if a.renderer.Styled() && a.opts.Status != nil && ui.IsTerminal(a.opts.Status) {
		spinner := ui.NewSpinner(a.opts.Status, "Looking up "+q.String()+"…", ui.DefaultTheme())
		spinner.Start()
		defer spinner.Stop()
	}

	var (
		info *lookup.HomeInformation
		err  error
	)
	if a.opts.Detailed {
		info, err = a.retriever.Detailed(ctx, q)
	} else {
		info, err = a.retriever.Summary(ctx, q)
	}
	if errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("lookup cancelled: %w", err)
	}
	return info, err
}
