// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/indiepub/internal/completion"
)

// # Sync Pitch

const syncPitchPrompt = `Write a 2-sentence sync licensing pitch for a song with these details:
Title: %s
Genre: %s
Mood: %s
Instrumentation: %s

Also suggest 3 specific use cases (e.g. "Car Commercial", "Romantic Comedy Scene").`

// Literal answers of the free-text workflows.
const (
	SyncPitchUnconfigured    = "Please configure API Key to generate pitch."
	SyncPitchFailed          = "Error generating pitch."
	TaxAssistantUnconfigured = "I cannot answer without an API Key."
	TaxAssistantFailed       = "Sorry, I am having trouble connecting to the brain."
)

// unspecified fills prompt slots for song fields that were never enriched.
const unspecified = "Unspecified"

// SongBrief is what the pitch prompt needs to know about a song.
type SongBrief struct {
	Title           string
	Genre           string
	Mood            string
	Instrumentation string
}

// TextResult is the resolved outcome of a free-text workflow.
type TextResult struct {
	Outcome Outcome `json:"outcome"`
	Text    string  `json:"text"`
}

// GenerateSyncPitch writes a two-sentence pitch plus three use cases.
func (service *Service) GenerateSyncPitch(ctx context.Context, brief SongBrief) TextResult {
	prompt := fmt.Sprintf(syncPitchPrompt,
		orUnspecified(brief.Title),
		orUnspecified(brief.Genre),
		orUnspecified(brief.Mood),
		orUnspecified(brief.Instrumentation),
	)
	return service.freeText(ctx, WorkflowSyncPitch, prompt, SyncPitchUnconfigured, SyncPitchFailed)
}

// # Tax Assistant

const taxAssistantPrompt = `You are a helpful music business tax assistant for independent artists.
Answer the following question concisely and professionally. Disclaimer: Not legal advice.
Question: %s`

// AskTaxAssistant answers a free-text business or tax question.
func (service *Service) AskTaxAssistant(ctx context.Context, question string) TextResult {
	prompt := fmt.Sprintf(taxAssistantPrompt, strings.TrimSpace(question))
	return service.freeText(ctx, WorkflowTaxAssistant, prompt, TaxAssistantUnconfigured, TaxAssistantFailed)
}

// freeText runs a workflow whose reply is used verbatim.
func (service *Service) freeText(ctx context.Context, workflow, prompt, unconfigured, failed string) TextResult {
	call := service.begin(ctx, workflow)

	text, outcome := call.complete(prompt, completion.Options{})
	switch outcome {
	case OutcomeUnconfigured:
		return TextResult{Outcome: call.finish(outcome), Text: unconfigured}
	case OutcomeFailed:
		return TextResult{Outcome: call.finish(outcome), Text: failed}
	default:
		return TextResult{Outcome: call.finish(outcome), Text: text}
	}
}

func orUnspecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return unspecified
	}
	return value
}
