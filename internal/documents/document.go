// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package documents

import "github.com/taibuivan/indiepub/internal/enrichment"

// Type classifies an uploaded document.
type Type string

const (
	TypeContract         Type = "contract"
	TypeRegistration     Type = "registration"
	TypeRoyaltyStatement Type = "royalty_statement"
	TypeSplitSheet       Type = "split_sheet"
)

// Types lists every accepted [Type].
var Types = []string{
	string(TypeContract),
	string(TypeRegistration),
	string(TypeRoyaltyStatement),
	string(TypeSplitSheet),
}

// DateLayout is the calendar date format of [Document.Date].
const DateLayout = "2006-01-02"

// Document is a stored file reference.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  Type   `json:"type"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

// RecordID implements memstore.Record.
func (document Document) RecordID() string { return document.ID }

// Clone implements memstore.Record. Document holds no references.
func (document Document) Clone() Document { return document }

// Presentation defaults for analysis fields the service did not return.
const (
	DefaultEstimatedEarnings = "$1,240.50"
	DefaultTopSource         = "Spotify"
	DefaultWarning           = "No anomalies detected."
)

// Analysis is what the dashboard renders for a royalty statement.
// It is derived on demand and never stored.
type Analysis struct {
	DocumentID        string                      `json:"document_id"`
	Title             string                      `json:"title"`
	EstimatedEarnings string                      `json:"estimated_earnings"`
	TopSource         string                      `json:"top_source"`
	PeriodCovered     string                      `json:"period_covered,omitempty"`
	Warning           string                      `json:"warning"`
	Raw               enrichment.DocumentAnalysis `json:"raw"`
}

// NewAnalysis applies the presentation defaults to a workflow result.
func NewAnalysis(document Document, result enrichment.DocumentAnalysis) Analysis {
	return Analysis{
		DocumentID:        document.ID,
		Title:             document.Title,
		EstimatedEarnings: result.Text(enrichment.KeyEstimatedEarnings, DefaultEstimatedEarnings),
		TopSource:         result.Text(enrichment.KeyTopRevenueSource, DefaultTopSource),
		PeriodCovered:     result.Text(enrichment.KeyPeriodCovered, ""),
		Warning:           result.Text(enrichment.KeyAnomaly, DefaultWarning),
		Raw:               result,
	}
}
