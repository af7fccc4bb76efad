// Package suggest wraps the external text-generation service used to expand
// project keywords and summarize project content.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Strings returned in place of generated text when a call fails.
const (
	ExpandFailed     = "Error generating terms. Please try again."
	AnalyzeFailed    = "Analysis failed."
	AnalyzeNoContent = "No analysis available."
)

// ErrDisabled is returned by a generator with no credentials.
var ErrDisabled = errors.New("text generation is not configured")

// Options tunes a single generation call.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
}

var (
	expandOptions  = Options{Temperature: 0.7, MaxOutputTokens: 200}
	analyzeOptions = Options{Temperature: 0.4, MaxOutputTokens: 500}
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Disabled is a Generator that always fails with ErrDisabled.
type Disabled struct{}

// Generate implements Generator.
func (Disabled) Generate(context.Context, string, Options) (string, error) {
	return "", ErrDisabled
}

// Client issues term-expansion and analysis requests. Failures never
// propagate; they are logged and replaced by fixed fallback strings.
type Client struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient creates a client. A zero timeout means no per-call deadline
// beyond the caller's context.
func NewClient(gen Generator, timeout time.Duration, logger *slog.Logger) *Client {
	if gen == nil {
		gen = Disabled{}
	}
	return &Client{gen: gen, timeout: timeout, logger: logger}
}

// ExpandTerms asks for 5-8 related terms as a comma-separated list.
// An empty response yields "".
func (c *Client) ExpandTerms(ctx context.Context, keywords, projectName string) string {
	prompt := fmt.Sprintf(
		"Given the project name \"%s\" and keywords \"%s\", generate a list of 5-8 professional extended related terms for content expansion in a bidding database. Return only a comma-separated list of terms.",
		projectName, keywords,
	)
	text, err := c.generate(ctx, prompt, expandOptions)
	if err != nil {
		c.logFailure("expand terms", err)
		return ExpandFailed
	}
	return strings.TrimSpace(text)
}

// AnalyzeContent summarizes project content for a bidding evaluation.
func (c *Client) AnalyzeContent(ctx context.Context, content string) string {
	prompt := "Analyze and summarize the following project content for a bidding evaluation. Focus on technical requirements and key deliverables: \n\n" + content
	text, err := c.generate(ctx, prompt, analyzeOptions)
	if err != nil {
		c.logFailure("analyze content", err)
		return AnalyzeFailed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return AnalyzeNoContent
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.gen.Generate(ctx, prompt, opts)
}

func (c *Client) logFailure(op string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn("text generation failed", "op", op, "error", err)
}
