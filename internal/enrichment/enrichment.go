// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package enrichment implements the AI-assisted workflows of the dashboard:
metadata analysis, sync-pitch generation, tax Q&A and document analysis.

Every workflow owns a prompt template, an expected reply shape and fallback
values. A workflow always resolves: it never returns an error, and its result
carries an [Outcome] telling apart the three cases

  - [OutcomeSuccess]: the service answered and the reply was usable.
  - [OutcomeUnconfigured]: no credential, no network call was made.
  - [OutcomeFailed]: transport, service, empty or unparsable reply.

Replies requested as JSON are decoded into a generic object and read field by
field. Absent or mistyped fields stay absent; consumers pick their own literal
defaults.
*/
package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/indiepub/internal/completion"
	"github.com/taibuivan/indiepub/internal/platform/ctxutil"
	"github.com/taibuivan/indiepub/internal/platform/metrics"
)

// Outcome classifies how a workflow invocation resolved.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeFailed       Outcome = "failed"
)

// Workflow names, used as metric labels and log attributes.
const (
	WorkflowMetadata         = "metadata"
	WorkflowSyncPitch        = "sync_pitch"
	WorkflowTaxAssistant     = "tax_assistant"
	WorkflowDocumentAnalysis = "document_analysis"
)

// Service runs the enrichment workflows against a [completion.Completer].
type Service struct {
	completer completion.Completer
	metrics   *metrics.EnrichmentMetrics
	logger    *slog.Logger
}

// NewService constructs a Service. recorder may be nil.
func NewService(completer completion.Completer, recorder *metrics.EnrichmentMetrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		completer: completer,
		metrics:   recorder,
		logger:    logger,
	}
}

// invocation tracks one workflow call from prompt to resolved outcome.
type invocation struct {
	service  *Service
	ctx      context.Context
	workflow string
	started  time.Time
}

func (service *Service) begin(ctx context.Context, workflow string) *invocation {
	return &invocation{service: service, ctx: ctx, workflow: workflow, started: time.Now()}
}

// complete performs the completion call and classifies its error.
// It returns the raw text and OutcomeSuccess, or an empty string and the fallback outcome.
func (call *invocation) complete(prompt string, opts completion.Options) (string, Outcome) {
	text, err := call.service.completer.Complete(call.ctx, prompt, opts)
	switch {
	case err == nil:
		return text, OutcomeSuccess
	case errors.Is(err, completion.ErrNotConfigured):
		return "", OutcomeUnconfigured
	default:
		call.logFailure("completion_failed", err)
		return "", OutcomeFailed
	}
}

// logFailure records an upstream problem for diagnostics only.
func (call *invocation) logFailure(message string, err error) {
	ctxutil.LoggerOr(call.ctx, call.service.logger).WarnContext(call.ctx, message,
		slog.String("workflow", call.workflow),
		slog.Any("error", err),
	)
}

// finish records metrics for the resolved outcome.
func (call *invocation) finish(outcome Outcome) Outcome {
	call.service.metrics.Observe(call.workflow, string(outcome), time.Since(call.started))
	if outcome == OutcomeUnconfigured {
		ctxutil.LoggerOr(call.ctx, call.service.logger).DebugContext(call.ctx, "enrichment_unconfigured",
			slog.String("workflow", call.workflow),
		)
	}
	return outcome
}
