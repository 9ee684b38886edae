// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/taibuivan/indiepub/pkg/slice"
)

// NoVenuesMessage accompanies an empty search result.
const NoVenuesMessage = "No venues found matching your search."

// Listing is one entry of the directories index.
type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Count       string `json:"count"`
	Available   bool   `json:"available"`
}

const comingSoon = "Coming Soon"

// SearchResult is a filtered venue list.
type SearchResult struct {
	Venues  []Venue `json:"venues"`
	Count   int     `json:"count"`
	Message string  `json:"message,omitempty"`
}

// Directory is an immutable, searchable venue dataset. It is safe for concurrent use.
type Directory struct {
	venues []Venue
	keys   []searchKey
	states []string
}

type searchKey struct {
	name string
	city string
}

// New indexes venues for search.
func New(venues []Venue) *Directory {
	folder := cases.Fold()
	directory := &Directory{
		venues: slices.Clone(venues),
		keys:   make([]searchKey, len(venues)),
	}

	for i, venue := range venues {
		directory.keys[i] = searchKey{name: folder.String(venue.Venue), city: folder.String(venue.City)}
		if venue.State != "" {
			directory.states = append(directory.states, venue.State)
		}
	}
	slices.Sort(directory.states)
	directory.states = slices.Compact(directory.states)

	return directory
}

// Search returns venues whose name or city contains query, ignoring case,
// restricted to an exact state when state is not empty.
func (directory *Directory) Search(query, state string) SearchResult {
	needle := cases.Fold().String(query)

	matches := make([]Venue, 0)
	for i, venue := range directory.venues {
		key := directory.keys[i]
		if !strings.Contains(key.name, needle) && !strings.Contains(key.city, needle) {
			continue
		}
		if state != "" && venue.State != state {
			continue
		}
		matches = append(matches, venue)
	}

	result := SearchResult{Venues: matches, Count: len(matches)}
	if len(matches) == 0 {
		result.Message = NoVenuesMessage
	}
	return result
}

// States returns the distinct states in the dataset, sorted.
func (directory *Directory) States() []string {
	return slices.Clone(directory.states)
}

// Len reports how many venues are loaded.
func (directory *Directory) Len() int {
	return len(directory.venues)
}

// Index lists the directories shown on the directories page.
func (directory *Directory) Index() []Listing {
	listings := []Listing{
		{
			ID:          "venues",
			Title:       "Venue Directory",
			Description: "Browse music venues across the country. Find clubs, halls, and bars to book your next gig.",
			Link:        "/directories/venues",
		},
		{
			ID:          "radio",
			Title:       "Radio Stations",
			Description: "Connect with college, community, and commercial radio stations to get your music on air.",
		},
		{
			ID:          "service",
			Title:       "Service Providers",
			Description: "Find producers, engineers, graphic designers, and other industry professionals.",
		},
		{
			ID:          "festivals",
			Title:       "Festival Guide",
			Description: "A comprehensive list of music festivals accepting submissions.",
		},
	}

	return slice.Map(listings, func(listing Listing) Listing {
		if listing.Link == "" {
			listing.Link = "#"
			listing.Count = comingSoon
			return listing
		}
		listing.Available = true
		listing.Count = formatCount(directory.Len())
		return listing
	})
}

// formatCount renders an entry count with thousands separators.
func formatCount(count int) string {
	return message.NewPrinter(language.English).Sprintf("%d", count)
}
