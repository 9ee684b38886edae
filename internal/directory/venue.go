// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

//go:embed data/venues.json
var venuesJSON []byte

// Venue is one row of the read-only venue dataset.
type Venue struct {
	Venue   string `json:"venue"`
	Address string `json:"address"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
	Website string `json:"website"`

	// Derived when the dataset is loaded.
	WebsiteURL string `json:"website_url,omitempty"`
	MapsURL    string `json:"maps_url"`
}

// LoadVenues decodes the embedded dataset.
func LoadVenues() ([]Venue, error) {
	return DecodeVenues(venuesJSON)
}

// DecodeVenues parses a JSON array of venues and fills the derived links.
func DecodeVenues(data []byte) ([]Venue, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var venues []Venue
	if err := decoder.Decode(&venues); err != nil {
		return nil, fmt.Errorf("directory: decode venues: %w", err)
	}

	for i := range venues {
		venues[i].WebsiteURL = websiteURL(venues[i].Website)
		venues[i].MapsURL = mapsURL(venues[i].Address)
	}
	return venues, nil
}

// websiteURL adds a scheme to bare host names.
func websiteURL(website string) string {
	website = strings.TrimSpace(website)
	switch {
	case website == "":
		return ""
	case strings.HasPrefix(website, "http"):
		return website
	default:
		return "http://" + website
	}
}

func mapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}
