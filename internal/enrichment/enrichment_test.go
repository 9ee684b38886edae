// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package enrichment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taibuivan/indiepub/internal/completion"
	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/internal/platform/metrics"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// fakeCompleter replays a canned reply and records every call.
type fakeCompleter struct {
	reply   string
	err     error
	calls   int
	prompts []string
	options []completion.Options
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, opts completion.Options) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.options = append(f.options, opts)
	return f.reply, f.err
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService(completer completion.Completer) *enrichment.Service {
	return enrichment.NewService(completer, nil, quietLogger)
}

// unconfiguredClient is the real client with no credential.
func unconfiguredClient(t *testing.T) *completion.Client {
	t.Helper()
	client, err := completion.NewClient(context.Background(), completion.Config{}, quietLogger)
	require.NoError(t, err)
	return client
}

var upstreamFailures = []struct {
	name  string
	reply string
	err   error
}{
	{"timeout", "", context.DeadlineExceeded},
	{"non_2xx", "", errors.Join(completion.ErrUpstream, errors.New("status 503"))},
	{"empty_reply", "", completion.ErrEmptyResponse},
}

// # Metadata analysis

/*
TestAnalyzeMetadata_Unconfigured yields the literal fallback with no network call.
*/
func TestAnalyzeMetadata_Unconfigured(t *testing.T) {
	result := newService(unconfiguredClient(t)).AnalyzeMetadata(context.Background(), "Neon Highway", "The Midnight Echo")

	assert.Equal(t, enrichment.OutcomeUnconfigured, result.Outcome)
	assert.Equal(t, enrichment.UnconfiguredMetadata(), result.Suggestion)
	assert.Equal(t, "Unknown", *result.Suggestion.Genre)
	assert.Equal(t, "Unknown", *result.Suggestion.Mood)
	assert.Equal(t, []string{}, *result.Suggestion.Tags)
	assert.Nil(t, result.Suggestion.BPM)
}

/*
TestAnalyzeMetadata_Failures yields the failure fallback, distinct from the unconfigured one.
*/
func TestAnalyzeMetadata_Failures(t *testing.T) {
	cases := append([]struct {
		name  string
		reply string
		err   error
	}{
		{"malformed_json", "{genre: Rock", nil},
		{"json_array", `["Rock"]`, nil},
		{"prose", "This sounds like rock to me.", nil},
	}, upstreamFailures...)

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			result := newService(&fakeCompleter{reply: tt.reply, err: tt.err}).
				AnalyzeMetadata(context.Background(), "Neon Highway", "The Midnight Echo")

			assert.Equal(t, enrichment.OutcomeFailed, result.Outcome)
			assert.Equal(t, enrichment.FailedMetadata(), result.Suggestion)
			assert.NotEqual(t, enrichment.UnconfiguredMetadata(), result.Suggestion)
		})
	}
}

/*
TestAnalyzeMetadata_Success reads every field and requests JSON output.
*/
func TestAnalyzeMetadata_Success(t *testing.T) {
	fake := &fakeCompleter{reply: `{"genre":"Rock","mood":"Angry","instrumentation":"Guitar","bpm":140,"tags":["loud"]}`}

	result := newService(fake).AnalyzeMetadata(context.Background(), "Neon Highway", "The Midnight Echo")

	require.Equal(t, enrichment.OutcomeSuccess, result.Outcome)
	assert.Equal(t, enrichment.MetadataSuggestion{
		Genre:           pointer.To("Rock"),
		Mood:            pointer.To("Angry"),
		Instrumentation: pointer.To("Guitar"),
		BPM:             pointer.To(140),
		Tags:            pointer.To([]string{"loud"}),
	}, result.Suggestion)

	require.Equal(t, 1, fake.calls)
	assert.True(t, fake.options[0].JSON)
	assert.Contains(t, fake.prompts[0], `"Neon Highway"`)
	assert.Contains(t, fake.prompts[0], `"The Midnight Echo"`)
}

/*
TestAnalyzeMetadata_PartialReply leaves absent and mistyped fields unset.
*/
func TestAnalyzeMetadata_PartialReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  enrichment.MetadataSuggestion
	}{
		{"only_genre", `{"genre":"Jazz"}`, enrichment.MetadataSuggestion{Genre: pointer.To("Jazz")}},
		{"bpm_as_string", `{"bpm":"97.6"}`, enrichment.MetadataSuggestion{BPM: pointer.To(98)}},
		{"bpm_garbage", `{"bpm":"fast"}`, enrichment.MetadataSuggestion{}},
		{"blank_mood", `{"mood":"  "}`, enrichment.MetadataSuggestion{}},
		{"mixed_tags", `{"tags":["calm", 3, ""]}`, enrichment.MetadataSuggestion{Tags: pointer.To([]string{"calm"})}},
		{"genre_wrong_type", `{"genre":42}`, enrichment.MetadataSuggestion{}},
		{"empty_object", `{}`, enrichment.MetadataSuggestion{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newService(&fakeCompleter{reply: tt.reply}).AnalyzeMetadata(context.Background(), "t", "a")
			assert.Equal(t, enrichment.OutcomeSuccess, result.Outcome)
			assert.Equal(t, tt.want, result.Suggestion)
		})
	}
}

/*
TestFallbacks_AreFreshCopies guards the literals against caller mutation.
*/
func TestFallbacks_AreFreshCopies(t *testing.T) {
	first := enrichment.FailedMetadata()
	(*first.Tags)[0] = "mutated"
	*first.Genre = "mutated"

	assert.Equal(t, []string{"Energetic"}, *enrichment.FailedMetadata().Tags)
	assert.Equal(t, "Pop", *enrichment.FailedMetadata().Genre)
}

// # Free-text workflows

/*
TestFreeText_ThreeOutcomes covers the pitch and tax workflows for every outcome.
*/
func TestFreeText_ThreeOutcomes(t *testing.T) {
	workflows := []struct {
		name         string
		run          func(*enrichment.Service) enrichment.TextResult
		unconfigured string
		failed       string
	}{
		{
			name: "sync_pitch",
			run: func(s *enrichment.Service) enrichment.TextResult {
				return s.GenerateSyncPitch(context.Background(), enrichment.SongBrief{Title: "Neon Highway", Genre: "Synthwave"})
			},
			unconfigured: "Please configure API Key to generate pitch.",
			failed:       "Error generating pitch.",
		},
		{
			name: "tax_assistant",
			run: func(s *enrichment.Service) enrichment.TextResult {
				return s.AskTaxAssistant(context.Background(), "Can I write off my Spotify subscription?")
			},
			unconfigured: "I cannot answer without an API Key.",
			failed:       "Sorry, I am having trouble connecting to the brain.",
		},
	}

	for _, wf := range workflows {
		t.Run(wf.name+"/unconfigured", func(t *testing.T) {
			result := wf.run(newService(unconfiguredClient(t)))
			assert.Equal(t, enrichment.TextResult{Outcome: enrichment.OutcomeUnconfigured, Text: wf.unconfigured}, result)
		})

		for _, failure := range upstreamFailures {
			t.Run(wf.name+"/"+failure.name, func(t *testing.T) {
				result := wf.run(newService(&fakeCompleter{reply: failure.reply, err: failure.err}))
				assert.Equal(t, enrichment.TextResult{Outcome: enrichment.OutcomeFailed, Text: wf.failed}, result)
			})
		}

		t.Run(wf.name+"/success", func(t *testing.T) {
			fake := &fakeCompleter{reply: "A warm, driving track."}
			result := wf.run(newService(fake))
			assert.Equal(t, enrichment.TextResult{Outcome: enrichment.OutcomeSuccess, Text: "A warm, driving track."}, result)
			assert.False(t, fake.options[0].JSON)
		})
	}
}

/*
TestPrompts_CarryTemplateContent checks the disclaimer and pitch slots.
*/
func TestPrompts_CarryTemplateContent(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	service := newService(fake)

	service.AskTaxAssistant(context.Background(), "  Is my guitar deductible?  ")
	service.GenerateSyncPitch(context.Background(), enrichment.SongBrief{Title: "Broken Strings", Mood: "Sad"})

	require.Len(t, fake.prompts, 2)
	assert.Contains(t, fake.prompts[0], "Disclaimer: Not legal advice.")
	assert.Contains(t, fake.prompts[0], "Question: Is my guitar deductible?")
	assert.Contains(t, fake.prompts[1], "Title: Broken Strings")
	assert.Contains(t, fake.prompts[1], "Genre: Unspecified")
	assert.Contains(t, fake.prompts[1], "Mood: Sad")
	assert.Contains(t, fake.prompts[1], "3 specific use cases")
}

// # Document analysis

/*
TestAnalyzeDocument_ThreeOutcomes distinguishes message, nil and parsed object.
*/
func TestAnalyzeDocument_ThreeOutcomes(t *testing.T) {
	unconfigured := newService(unconfiguredClient(t)).AnalyzeDocument(context.Background(), "Q1 2024 DistroKid Statement")
	assert.Equal(t, enrichment.OutcomeUnconfigured, unconfigured.Outcome)
	assert.Equal(t, "API Key missing.", unconfigured.Message)
	assert.Nil(t, unconfigured.Fields)

	for _, failure := range append(upstreamFailures, struct {
		name  string
		reply string
		err   error
	}{"malformed_json", "not json", nil}) {
		t.Run(failure.name, func(t *testing.T) {
			result := newService(&fakeCompleter{reply: failure.reply, err: failure.err}).AnalyzeDocument(context.Background(), "x")
			assert.Equal(t, enrichment.OutcomeFailed, result.Outcome)
			assert.Nil(t, result.Fields)
			assert.Empty(t, result.Message)
		})
	}

	fake := &fakeCompleter{reply: `{"Estimated Total Earnings":"$980.00","Top Revenue Source":"Apple Music","Period Covered":"Q1 2024"}`}
	success := newService(fake).AnalyzeDocument(context.Background(), "Q1 2024 DistroKid Statement")
	assert.Equal(t, enrichment.OutcomeSuccess, success.Outcome)
	assert.Equal(t, "$980.00", success.Text(enrichment.KeyEstimatedEarnings, "$1,240.50"))
	assert.Equal(t, "No anomalies detected.", success.Text(enrichment.KeyAnomaly, "No anomalies detected."))
	assert.True(t, fake.options[0].JSON)
	assert.Contains(t, fake.prompts[0], enrichment.KeyAnomaly)
}

/*
TestDocumentAnalysis_Text renders numbers and falls back on blanks.
*/
func TestDocumentAnalysis_Text(t *testing.T) {
	analysis := enrichment.DocumentAnalysis{Fields: map[string]any{"n": 1240.5, "blank": "", "list": []any{"a"}}}

	assert.Equal(t, "1240.5", analysis.Text("n", "d"))
	assert.Equal(t, "d", analysis.Text("blank", "d"))
	assert.Equal(t, "d", analysis.Text("list", "d"))
	assert.Equal(t, "d", enrichment.DocumentAnalysis{}.Text("missing", "d"))
}

// # Metrics

/*
TestService_RecordsOutcomes checks the per-outcome counters.
*/
func TestService_RecordsOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewEnrichmentMetrics(registry)
	require.NoError(t, err)

	success := enrichment.NewService(&fakeCompleter{reply: "{}"}, recorder, quietLogger)
	failing := enrichment.NewService(&fakeCompleter{err: completion.ErrUpstream}, recorder, quietLogger)

	success.AnalyzeMetadata(context.Background(), "t", "a")
	success.AnalyzeMetadata(context.Background(), "t", "a")
	failing.AnalyzeMetadata(context.Background(), "t", "a")

	expected := `
# HELP indiepub_enrichment_requests_total Total number of enrichment workflow invocations
# TYPE indiepub_enrichment_requests_total counter
indiepub_enrichment_requests_total{outcome="failed",workflow="metadata"} 1
indiepub_enrichment_requests_total{outcome="success",workflow="metadata"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "indiepub_enrichment_requests_total"))
}
