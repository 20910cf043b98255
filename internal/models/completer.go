package models

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Request is one prompt submitted to a language model.
type Request struct {
	// System is an optional system instruction.
	System string
	// Prompt is the user message.
	Prompt string
}

// Completer is the narrow interface the lookup layer needs from a language
// model: submit a prompt, receive text. Implementations return
// *AuthenticationError or *TransportError on failure. Tests supply stubs.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// chatCompleter adapts an eino chat model to Completer.
type chatCompleter struct {
	provider string
	model    string
	chat     model.BaseChatModel
	timeout  time.Duration
	logger   *log.Logger
}

func (c *chatCompleter) Complete(ctx context.Context, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := make([]*schema.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, schema.SystemMessage(req.System))
	}
	messages = append(messages, schema.UserMessage(req.Prompt))

	start := time.Now()
	resp, err := c.chat.Generate(ctx, messages)
	if err != nil {
		c.logger.Debug("completion failed", "provider", c.provider, "model", c.model,
			"duration", time.Since(start), "err", err)
		return "", classifyError(c.provider, err)
	}
	if resp == nil {
		return "", &TransportError{Provider: c.provider, Err: errors.New("provider returned no message")}
	}

	c.logger.Debug("completion finished", "provider", c.provider, "model", c.model,
		"duration", time.Since(start), "chars", len(resp.Content))
	return resp.Content, nil
}
