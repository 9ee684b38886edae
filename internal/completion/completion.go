// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package completion is the single adapter between typed domain calls and the
external text-generation service.

A [Client] sends one prompt per call and hands back the raw reply text. When
JSON output is requested the service is asked for a JSON document, but the
text is still returned unmodified: the expected shape belongs to the caller.

# Failure Model

  - No credential: [ErrNotConfigured], returned before any network activity.
  - Blank prompt: [ErrEmptyPrompt].
  - Transport or service failure: [ErrUpstream] wrapping the cause.
  - Blank reply: [ErrEmptyResponse].

Exactly one request is made per call, bounded by the configured timeout.
There are no retries.
*/
package completion

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means no credential is set. It is an expected state.
	ErrNotConfigured = errors.New("completion: no API key configured")

	// ErrEmptyPrompt rejects blank prompts without calling the service.
	ErrEmptyPrompt = errors.New("completion: prompt must not be empty")

	// ErrUpstream wraps transport and service errors.
	ErrUpstream = errors.New("completion: upstream call failed")

	// ErrEmptyResponse means the service answered without any text.
	ErrEmptyResponse = errors.New("completion: empty response")
)

// Options tunes a single completion request.
type Options struct {
	// JSON asks the service to constrain its reply to a JSON document.
	JSON bool
}

// Completer is what enrichment workflows depend on.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}
