// Package lookup turns an address into a HomeInformation report by querying
// a language model.
package lookup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mark3labs/homeinfo/internal/address"
	"github.com/mark3labs/homeinfo/internal/models"
	"github.com/mark3labs/homeinfo/internal/prompt"
)

// Retriever runs lookups against a Completer. Requests are issued one at a
// time, in order.
type Retriever struct {
	completer models.Completer
	logger    *log.Logger
}

// NewRetriever creates a Retriever. A nil logger uses the default logger.
func NewRetriever(c models.Completer, logger *log.Logger) *Retriever {
	if logger == nil {
		logger = log.Default()
	}
	return &Retriever{completer: c, logger: logger}
}

// Summary issues a single request asking for an overview, details and nearby
// schools, and returns the reply unmodified as the overview.
func (r *Retriever) Summary(ctx context.Context, q address.Query) (*HomeInformation, error) {
	text, err := r.complete(ctx, "summary", prompt.SystemRealEstateExpert, prompt.Summary(q))
	if err != nil {
		return nil, err
	}
	return &HomeInformation{Address: q.String(), Overview: text}, nil
}

// Detailed issues three requests: a free-text overview, the property facts and
// nearby schools. Request errors abort the lookup; replies that cannot be
// parsed leave the corresponding fields empty.
func (r *Retriever) Detailed(ctx context.Context, q address.Query) (*HomeInformation, error) {
	overview, err := r.complete(ctx, "overview", prompt.SystemRealEstateExpert, prompt.Overview(q))
	if err != nil {
		return nil, err
	}

	detailsText, err := r.complete(ctx, "details", prompt.SystemPropertyDatabase, prompt.Details(q))
	if err != nil {
		return nil, err
	}
	details := ParseDetails(detailsText)
	if details.SquareFeet == nil {
		r.logger.Warn("could not parse property details", "address", q.String())
	}

	schoolsText, err := r.complete(ctx, "schools", prompt.SystemSchoolDatabase, prompt.Schools(q))
	if err != nil {
		return nil, err
	}
	schools := ParseSchools(schoolsText)
	r.logger.Debug("parsed schools", "count", len(schools))

	return &HomeInformation{
		Address:  q.String(),
		Overview: overview,
		Details:  details,
		Schools:  schools,
	}, nil
}

func (r *Retriever) complete(ctx context.Context, section, system, userPrompt string) (string, error) {
	r.logger.Debug("requesting completion", "section", section)
	text, err := r.completer.Complete(ctx, models.Request{System: system, Prompt: userPrompt})
	if err != nil {
		return "", fmt.Errorf("error retrieving %s: %w", section, err)
	}
	return text, nil
}
