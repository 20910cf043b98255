package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mark3labs/homeinfo/internal/address"
	"github.com/mark3labs/homeinfo/internal/models"
)

// Options configures an App.
type Options struct {
	// Completer answers the lookup prompts. Required. Tests supply stubs.
	Completer models.Completer

	// Query holds address fields supplied up front (flags or config). Empty
	// fields are prompted for.
	Query address.Query

	// Detailed selects the three-request lookup instead of the single
	// summary request.
	Detailed bool

	// Format is config.FormatText, FormatJSON or FormatYAML.
	Format string

	// In is read for prompted fields.
	In io.Reader

	// Out receives the report.
	Out io.Writer

	// PromptOut receives questions and validation hints. Defaults to Out.
	PromptOut io.Writer

	// Status receives the progress spinner when it is a terminal. Optional.
	Status io.Writer

	// Logger defaults to log.Default().
	Logger *log.Logger
}
