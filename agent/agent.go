// Package agent implements the AI collaborator: it condenses the last 30
// days of ledger activity into a financial snapshot and asks a generative
// model for a short executive summary. The provider sits behind a narrow
// Summarizer interface so it can be swapped; failures never propagate,
// the caller always gets a displayable string.
package agent

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/retxed/ithub"
	"google.golang.org/genai"
)

// Fixed strings returned instead of errors.
const (
	// MsgUnavailable is returned when no API key is configured.
	MsgUnavailable = "AI Service Unavailable (Missing API Key)"
	// MsgFailed is returned when the request fails.
	MsgFailed = "Failed to generate insights. Please try again later."
)

// Summarizer produces a short executive summary from a snapshot. The
// returned text is markdown-flavored and always displayable, whatever
// happened underneath.
type Summarizer interface {
	Summarize(ctx context.Context, s Snapshot) string
}

// Gemini is the Summarizer backed by the Gemini API.
type Gemini struct {
	Model  string
	client *genai.Client
}

// NewGemini creates the Gemini summarizer. The client reads its API key
// from the environment (GEMINI_API_KEY or GOOGLE_API_KEY); without one
// there is nothing to call and an error is returned.
func NewGemini(ctx context.Context) (*Gemini, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return nil, fmt.Errorf("no API key in environment")
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Gemini{Model: "gemini-2.5-flash", client: client}, nil
}

// Summarize sends the snapshot prompt to the model. It is single-shot: no
// retry, no timeout beyond the context's own.
func (g *Gemini) Summarize(ctx context.Context, s Snapshot) string {
	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(Prompt(s)), nil)
	if err != nil {
		log.Printf("gemini request failed: %v", err)
		return MsgFailed
	}
	text := resp.Text()
	if text == "" {
		return "No insights generated."
	}
	return text
}

// BusinessInsight is the one-call surface used by the CLI: build the
// snapshot, summarize it, degrade to a fixed string on any failure.
func BusinessInsight(ctx context.Context, data *ithub.AppData) string {
	g, err := NewGemini(ctx)
	if err != nil {
		log.Printf("summarizer unavailable: %v", err)
		return MsgUnavailable
	}
	return g.Summarize(ctx, NewSnapshot(data.Transactions, data.Expenses))
}
