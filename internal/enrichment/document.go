// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package enrichment

import (
	"context"
	"fmt"

	"github.com/taibuivan/indiepub/internal/completion"
)

// Keys the document analysis prompt asks the service to use.
const (
	KeyEstimatedEarnings = "Estimated Total Earnings"
	KeyTopRevenueSource  = "Top Revenue Source"
	KeyPeriodCovered     = "Period Covered"
	KeyAnomaly           = "One potential anomaly or warning"
)

// DocumentAnalysisUnconfigured is the message returned without a credential.
const DocumentAnalysisUnconfigured = "API Key missing."

const documentAnalysisPrompt = `Simulate an analysis of a music royalty statement document titled %q.
Extract:
1. ` + KeyEstimatedEarnings + `
2. ` + KeyTopRevenueSource + `
3. ` + KeyPeriodCovered + `
4. ` + KeyAnomaly + `.
Return as a JSON object using exactly those four phrases as keys.`

// DocumentAnalysis is a transient view artifact, never written back to a document.
//
// Fields is nil unless Outcome is success. Message is set only when unconfigured.
type DocumentAnalysis struct {
	Outcome Outcome        `json:"outcome"`
	Message string         `json:"message,omitempty"`
	Fields  map[string]any `json:"fields"`
}

// AnalyzeDocument asks the service to summarise a royalty statement by title.
func (service *Service) AnalyzeDocument(ctx context.Context, title string) DocumentAnalysis {
	call := service.begin(ctx, WorkflowDocumentAnalysis)

	text, outcome := call.complete(fmt.Sprintf(documentAnalysisPrompt, title), completion.Options{JSON: true})
	switch outcome {
	case OutcomeUnconfigured:
		return DocumentAnalysis{Outcome: call.finish(outcome), Message: DocumentAnalysisUnconfigured}
	case OutcomeFailed:
		return DocumentAnalysis{Outcome: call.finish(outcome)}
	}

	object, err := decodeObject(text)
	if err != nil {
		call.logFailure("document_reply_unparsable", err)
		return DocumentAnalysis{Outcome: call.finish(OutcomeFailed)}
	}

	return DocumentAnalysis{Outcome: call.finish(OutcomeSuccess), Fields: object}
}

// Text returns the string form of a field, or fallback when it is absent or blank.
// Numbers are rendered without a trailing ".0".
func (analysis DocumentAnalysis) Text(key, fallback string) string {
	switch value := analysis.Fields[key].(type) {
	case string:
		if value != "" {
			return value
		}
	case float64:
		return fmt.Sprintf("%g", value)
	}
	return fallback
}
