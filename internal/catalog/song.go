// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"
	"time"

	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

// Song is a catalog entry. Optional fields stay nil until enrichment or an edit sets them.
type Song struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	FileURL         *string   `json:"file_url,omitempty"`
	BPM             *int      `json:"bpm,omitempty"`
	SongKey         *string   `json:"song_key,omitempty"`
	Genre           *string   `json:"genre,omitempty"`
	Mood            *string   `json:"mood,omitempty"`
	Instrumentation *string   `json:"instrumentation,omitempty"`
	ISRC            *string   `json:"isrc,omitempty"`
	Writers         string    `json:"writers"`
	Splits          string    `json:"splits"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
}

// SongPatch is a partial update. Nil fields leave the stored value untouched.
type SongPatch struct {
	Title           *string   `json:"title,omitempty"`
	Artist          *string   `json:"artist,omitempty"`
	FileURL         *string   `json:"file_url,omitempty"`
	BPM             *int      `json:"bpm,omitempty"`
	SongKey         *string   `json:"song_key,omitempty"`
	Genre           *string   `json:"genre,omitempty"`
	Mood            *string   `json:"mood,omitempty"`
	Instrumentation *string   `json:"instrumentation,omitempty"`
	ISRC            *string   `json:"isrc,omitempty"`
	Writers         *string   `json:"writers,omitempty"`
	Splits          *string   `json:"splits,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
}

// RecordID implements memstore.Record.
func (song Song) RecordID() string { return song.ID }

// Clone returns a deep copy.
func (song Song) Clone() Song {
	song.FileURL = pointer.Copy(song.FileURL)
	song.BPM = pointer.Copy(song.BPM)
	song.SongKey = pointer.Copy(song.SongKey)
	song.Genre = pointer.Copy(song.Genre)
	song.Mood = pointer.Copy(song.Mood)
	song.Instrumentation = pointer.Copy(song.Instrumentation)
	song.ISRC = pointer.Copy(song.ISRC)
	song.Tags = cloneTags(song.Tags)
	return song
}

// Apply merges patch into the song. Applying the same patch twice is the same as once.
func (song *Song) Apply(patch SongPatch) {
	if patch.Title != nil {
		song.Title = *patch.Title
	}
	if patch.Artist != nil {
		song.Artist = *patch.Artist
	}
	if patch.Writers != nil {
		song.Writers = *patch.Writers
	}
	if patch.Splits != nil {
		song.Splits = *patch.Splits
	}
	if patch.Tags != nil {
		song.Tags = cloneTags(*patch.Tags)
	}

	mergeOptional(&song.FileURL, patch.FileURL)
	mergeOptional(&song.BPM, patch.BPM)
	mergeOptional(&song.SongKey, patch.SongKey)
	mergeOptional(&song.Genre, patch.Genre)
	mergeOptional(&song.Mood, patch.Mood)
	mergeOptional(&song.Instrumentation, patch.Instrumentation)
	mergeOptional(&song.ISRC, patch.ISRC)
}

// Brief is the view of the song the pitch prompt consumes.
func (song Song) Brief() enrichment.SongBrief {
	return enrichment.SongBrief{
		Title:           song.Title,
		Genre:           pointer.Val(song.Genre),
		Mood:            pointer.Val(song.Mood),
		Instrumentation: pointer.Val(song.Instrumentation),
	}
}

// PatchFromSuggestion turns an enrichment suggestion into a patch that only
// touches the fields the service actually returned.
func PatchFromSuggestion(suggestion enrichment.MetadataSuggestion) SongPatch {
	return SongPatch{
		Genre:           pointer.Copy(suggestion.Genre),
		Mood:            pointer.Copy(suggestion.Mood),
		Instrumentation: pointer.Copy(suggestion.Instrumentation),
		BPM:             pointer.Copy(suggestion.BPM),
		Tags:            pointer.Copy(suggestion.Tags),
	}
}

func mergeOptional[T any](target **T, value *T) {
	if value != nil {
		*target = pointer.Copy(value)
	}
}

// cloneTags never returns nil so that tags always encode as a JSON array.
func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
