// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package enrichment

import (
	"context"
	"fmt"

	"github.com/taibuivan/indiepub/internal/completion"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

const metadataPrompt = `Analyze the song title %q by %q.
Provide a likely JSON object with keys: genre (string), mood (string), instrumentation (string), bpm (number estimate), and tags (array of strings).
Do not include markdown formatting. Just the JSON.`

// MetadataSuggestion is a partial set of song fields proposed by the service.
// A nil field was not suggested and must leave the stored value alone.
type MetadataSuggestion struct {
	Genre           *string   `json:"genre,omitempty"`
	Mood            *string   `json:"mood,omitempty"`
	Instrumentation *string   `json:"instrumentation,omitempty"`
	BPM             *int      `json:"bpm,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
}

// MetadataResult is the resolved outcome of [Service.AnalyzeMetadata].
type MetadataResult struct {
	Outcome    Outcome            `json:"outcome"`
	Suggestion MetadataSuggestion `json:"suggestion"`
}

// UnconfiguredMetadata is returned when no credential is configured.
func UnconfiguredMetadata() MetadataSuggestion {
	return MetadataSuggestion{
		Genre: pointer.To("Unknown"),
		Mood:  pointer.To("Unknown"),
		Tags:  pointer.To([]string{}),
	}
}

// FailedMetadata is returned when the call or the reply parsing fails.
func FailedMetadata() MetadataSuggestion {
	return MetadataSuggestion{
		Genre: pointer.To("Pop"),
		Mood:  pointer.To("Upbeat"),
		Tags:  pointer.To([]string{"Energetic"}),
	}
}

// AnalyzeMetadata asks the service for genre, mood, instrumentation, tempo and tags.
func (service *Service) AnalyzeMetadata(ctx context.Context, title, artist string) MetadataResult {
	call := service.begin(ctx, WorkflowMetadata)

	text, outcome := call.complete(fmt.Sprintf(metadataPrompt, title, artist), completion.Options{JSON: true})
	switch outcome {
	case OutcomeUnconfigured:
		return MetadataResult{Outcome: call.finish(outcome), Suggestion: UnconfiguredMetadata()}
	case OutcomeFailed:
		return MetadataResult{Outcome: call.finish(outcome), Suggestion: FailedMetadata()}
	}

	object, err := decodeObject(text)
	if err != nil {
		call.logFailure("metadata_reply_unparsable", err)
		return MetadataResult{Outcome: call.finish(OutcomeFailed), Suggestion: FailedMetadata()}
	}

	return MetadataResult{
		Outcome: call.finish(OutcomeSuccess),
		Suggestion: MetadataSuggestion{
			Genre:           stringField(object, "genre"),
			Mood:            stringField(object, "mood"),
			Instrumentation: stringField(object, "instrumentation"),
			BPM:             numberField(object, "bpm"),
			Tags:            stringsField(object, "tags"),
		},
	}
}
