// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package licensing

import (
	"math"
	"strconv"
	"strings"

	"github.com/taibuivan/indiepub/internal/catalog"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

// Category groups licensing opportunities.
type Category string

const (
	CategoryLibrary    Category = "Library"
	CategoryAgency     Category = "Agency"
	CategorySupervisor Category = "Supervisor"
	CategoryNetwork    Category = "Network"
)

// Categories lists every accepted [Category].
var Categories = []string{
	string(CategoryLibrary),
	string(CategoryAgency),
	string(CategorySupervisor),
	string(CategoryNetwork),
}

// Opportunity is a music library, agency or supervisor accepting submissions.
type Opportunity struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Contact         string   `json:"contact"`
	PreferredGenres string   `json:"preferred_genres"`
	SubmissionLink  string   `json:"submission_link"`
}

// Opportunities is the static licensing directory.
var Opportunities = []Opportunity{
	{ID: "1", Name: "Artlist", Category: CategoryLibrary, Contact: "submits@artlist.io", PreferredGenres: "Pop, Acoustic, Cinematic", SubmissionLink: "#"},
	{ID: "2", Name: "Music Bed", Category: CategoryLibrary, Contact: "A&R", PreferredGenres: "Indie, Folk", SubmissionLink: "#"},
	{ID: "3", Name: "Crucial Music", Category: CategoryAgency, Contact: "Online Form", PreferredGenres: "Rock, Blues", SubmissionLink: "#"},
}

// Readiness check names.
const (
	CheckMetadata     = "Metadata"
	CheckInstrumental = "Instrumental"
	CheckClearSplits  = "Clear Splits"
)

// Readiness labels.
const (
	LabelReady    = "Ready for Libraries"
	LabelNotReady = "Needs Work"
)

// readyThreshold is the lowest score labelled ready.
const readyThreshold = 60

// Check is one pass/fail line of a readiness report.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Readiness scores how prepared a song is for pitching to libraries.
type Readiness struct {
	SongID string  `json:"song_id"`
	Title  string  `json:"title"`
	Score  int     `json:"score"`
	Label  string  `json:"label"`
	Checks []Check `json:"checks"`
}

// Assess scores a song.
//
//   - Metadata passes when genre, mood and bpm are all set.
//   - Instrumental passes when the instrumentation is recorded.
//   - Clear Splits passes when writers are named and the splits add up to 100.
func Assess(song catalog.Song) Readiness {
	checks := []Check{
		{Name: CheckMetadata, Passed: hasText(song.Genre) && hasText(song.Mood) && song.BPM != nil},
		{Name: CheckInstrumental, Passed: hasText(song.Instrumentation)},
		{Name: CheckClearSplits, Passed: strings.TrimSpace(song.Writers) != "" && splitsTotal(song.Splits) == 100},
	}

	passed := 0
	for _, check := range checks {
		if check.Passed {
			passed++
		}
	}
	score := int(math.Round(float64(passed) * 100 / float64(len(checks))))

	label := LabelNotReady
	if score >= readyThreshold {
		label = LabelReady
	}

	return Readiness{SongID: song.ID, Title: song.Title, Score: score, Label: label, Checks: checks}
}

func hasText(value *string) bool {
	return strings.TrimSpace(pointer.Val(value)) != ""
}

// splitsTotal sums shares written as "50/50", "60 / 40" or "100%".
// It returns -1 when any share is not a number.
func splitsTotal(splits string) float64 {
	if strings.TrimSpace(splits) == "" {
		return -1
	}

	total := 0.0
	for _, share := range strings.Split(splits, "/") {
		value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(share), "%"), 64)
		if err != nil || value < 0 {
			return -1
		}
		total += value
	}
	return total
}
