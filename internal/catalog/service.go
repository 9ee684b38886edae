// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/internal/platform/apperr"
	"github.com/taibuivan/indiepub/internal/platform/constants"
	"github.com/taibuivan/indiepub/internal/platform/validate"
	"github.com/taibuivan/indiepub/pkg/uuidv7"
)

// # Validation Fields

const (
	FieldTitle    = "title"
	FieldFileName = "file_name"
	FieldArtist   = "artist"
	FieldBPM      = "bpm"
	FieldWriters  = "writers"
	FieldSplits   = "splits"
)

const (
	untitled   = "Untitled"
	maxTextLen = 200
	maxBPM     = 400
)

// Enricher is the subset of the enrichment workflows the catalog uses.
type Enricher interface {
	AnalyzeMetadata(ctx context.Context, title, artist string) enrichment.MetadataResult
	GenerateSyncPitch(ctx context.Context, brief enrichment.SongBrief) enrichment.TextResult
}

// UploadInput describes a new song. Either Title or FileName must be set.
type UploadInput struct {
	Title    string `json:"title"`
	FileName string `json:"file_name"`
	Artist   string `json:"artist"`
	FileURL  string `json:"file_url"`
}

// EnrichedSong is a stored song together with how its enrichment resolved.
type EnrichedSong struct {
	Song       Song               `json:"song"`
	Enrichment enrichment.Outcome `json:"enrichment"`
}

// Pitch is a generated sync licensing pitch.
type Pitch struct {
	SongID  string             `json:"song_id"`
	Pitch   string             `json:"pitch"`
	Outcome enrichment.Outcome `json:"outcome"`
}

// # Service Layer

// Service sequences repository reads, enrichment calls and merges for songs.
type Service struct {
	repo     Repository
	enricher Enricher
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new catalog [Service].
func NewService(repo Repository, enricher Enricher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		enricher: enricher,
		logger:   logger,
		now:      time.Now,
	}
}

// ListSongs returns the whole catalog in insertion order.
func (service *Service) ListSongs(ctx context.Context) ([]Song, error) {
	return service.repo.ListSongs(ctx)
}

/*
UploadSong creates a song, enriches it and stores the merged record.

The title falls back to the file name without its extension. Writers and
splits default to the artist owning 100%.

Returns:
  - EnrichedSong: The stored record and the enrichment outcome
  - error: Validation or persistence failures
*/
func (service *Service) UploadSong(ctx context.Context, input UploadInput) (EnrichedSong, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldTitle, strings.TrimSpace(input.Title) == "" && strings.TrimSpace(input.FileName) == "",
		"A title or a file name is required")
	validator.MaxLen(FieldTitle, input.Title, maxTextLen).
		MaxLen(FieldFileName, input.FileName, maxTextLen).
		MaxLen(FieldArtist, input.Artist, maxTextLen)
	if err := validator.Err(); err != nil {
		return EnrichedSong{}, err
	}

	artist := strings.TrimSpace(input.Artist)
	if artist == "" {
		artist = constants.DefaultArtistName
	}

	song := Song{
		ID:        uuidv7.New(),
		UserID:    constants.DashboardUserID,
		Title:     uploadTitle(input),
		Artist:    artist,
		Writers:   artist + " (100%)",
		Splits:    "100",
		Tags:      []string{},
		CreatedAt: service.now().UTC(),
	}
	if fileURL := strings.TrimSpace(input.FileURL); fileURL != "" {
		song.FileURL = &fileURL
	}

	result := service.enricher.AnalyzeMetadata(ctx, song.Title, song.Artist)
	song.Apply(PatchFromSuggestion(result.Suggestion))

	stored, err := service.repo.AddSong(context.WithoutCancel(ctx), song)
	if err != nil {
		return EnrichedSong{}, err
	}

	service.logger.InfoContext(ctx, "song_uploaded",
		slog.String("song_id", stored.ID),
		slog.String("enrichment", string(result.Outcome)),
	)

	return EnrichedSong{Song: stored, Enrichment: result.Outcome}, nil
}

// UpdateSong applies a manual edit and returns the stored record.
func (service *Service) UpdateSong(ctx context.Context, id string, patch SongPatch) (Song, error) {
	if err := validatePatch(patch); err != nil {
		return Song{}, err
	}

	updated, ok, err := service.repo.UpdateSong(ctx, id, patch)
	if err != nil {
		return Song{}, err
	}
	if !ok {
		return Song{}, apperr.NotFound("Song")
	}
	return updated, nil
}

/*
ImproveMetadata re-runs metadata analysis for a stored song and merges the
suggestion into it.

Only the suggested fields are overwritten. The returned record is the one the
repository holds after the merge.
*/
func (service *Service) ImproveMetadata(ctx context.Context, id string) (EnrichedSong, error) {
	song, err := service.getSong(ctx, id)
	if err != nil {
		return EnrichedSong{}, err
	}

	result := service.enricher.AnalyzeMetadata(ctx, song.Title, song.Artist)

	updated, ok, err := service.repo.UpdateSong(context.WithoutCancel(ctx), id, PatchFromSuggestion(result.Suggestion))
	if err != nil {
		return EnrichedSong{}, err
	}
	if !ok {
		return EnrichedSong{}, apperr.NotFound("Song")
	}

	service.logger.InfoContext(ctx, "song_metadata_improved",
		slog.String("song_id", id),
		slog.String("enrichment", string(result.Outcome)),
	)

	return EnrichedSong{Song: updated, Enrichment: result.Outcome}, nil
}

// GeneratePitch writes a sync pitch for a stored song. Nothing is persisted.
func (service *Service) GeneratePitch(ctx context.Context, id string) (Pitch, error) {
	song, err := service.getSong(ctx, id)
	if err != nil {
		return Pitch{}, err
	}

	result := service.enricher.GenerateSyncPitch(ctx, song.Brief())
	return Pitch{SongID: song.ID, Pitch: result.Text, Outcome: result.Outcome}, nil
}

// GetSong returns one song or [apperr.NotFound].
func (service *Service) GetSong(ctx context.Context, id string) (Song, error) {
	return service.getSong(ctx, id)
}

func (service *Service) getSong(ctx context.Context, id string) (Song, error) {
	song, ok, err := service.repo.GetSong(ctx, id)
	if err != nil {
		return Song{}, err
	}
	if !ok {
		return Song{}, apperr.NotFound("Song")
	}
	return song, nil
}

func uploadTitle(input UploadInput) string {
	if title := strings.TrimSpace(input.Title); title != "" {
		return title
	}

	name := path.Base(strings.ReplaceAll(strings.TrimSpace(input.FileName), "\\", "/"))
	name = strings.TrimSpace(strings.TrimSuffix(name, path.Ext(name)))
	if name == "" || name == "." || name == "/" {
		return untitled
	}
	return name
}

func validatePatch(patch SongPatch) error {
	validator := &validate.Validator{}

	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, maxTextLen)
	}
	if patch.Artist != nil {
		validator.Required(FieldArtist, *patch.Artist).MaxLen(FieldArtist, *patch.Artist, maxTextLen)
	}
	if patch.Writers != nil {
		validator.MaxLen(FieldWriters, *patch.Writers, maxTextLen)
	}
	if patch.Splits != nil {
		validator.MaxLen(FieldSplits, *patch.Splits, maxTextLen)
	}
	if patch.BPM != nil {
		validator.Custom(FieldBPM, *patch.BPM < 0 || *patch.BPM > maxBPM, "Must be between 0 and 400")
	}

	return validator.Err()
}
