// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/indiepub/internal/catalog"
	"github.com/taibuivan/indiepub/internal/completion"
	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/internal/platform/apperr"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// stubCompleter answers every prompt with the same reply.
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(context.Context, string, completion.Options) (string, error) {
	s.calls++
	return s.reply, s.err
}

// cancellingCompleter cancels the caller's request before answering.
type cancellingCompleter struct {
	cancel context.CancelFunc
	reply  string
}

func (c *cancellingCompleter) Complete(context.Context, string, completion.Options) (string, error) {
	c.cancel()
	return c.reply, nil
}

func newCatalog(t *testing.T, completer completion.Completer) (*catalog.Service, *catalog.MemoryRepository) {
	t.Helper()
	repo := catalog.NewMemoryRepository(0, catalog.SeedSongs(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)
	enricher := enrichment.NewService(completer, nil, quietLogger)
	return catalog.NewService(repo, enricher, quietLogger), repo
}

func notFound(t *testing.T, err error) {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

// # Merge contract

/*
TestImproveMetadata_MergesOnlySuggestedFields replaces exactly the suggested
fields and keeps everything else.
*/
func TestImproveMetadata_MergesOnlySuggestedFields(t *testing.T) {
	completer := &stubCompleter{reply: `{"genre":"Rock","mood":"Angry","instrumentation":"Guitar","bpm":140,"tags":["loud"]}`}
	service, repo := newCatalog(t, completer)
	ctx := context.Background()

	result, err := service.ImproveMetadata(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, enrichment.OutcomeSuccess, result.Enrichment)

	song := result.Song
	assert.Equal(t, "Rock", *song.Genre)
	assert.Equal(t, "Angry", *song.Mood)
	assert.Equal(t, 140, *song.BPM)
	assert.Equal(t, []string{"loud"}, song.Tags)

	assert.Equal(t, "Neon Highway", song.Title)
	assert.Equal(t, "The Midnight Echo", song.Artist)
	assert.Equal(t, "John Doe (50%), Jane Smith (50%)", song.Writers)
	assert.Equal(t, "50/50", song.Splits)
	assert.Equal(t, "Guitar", *song.Instrumentation)
	assert.Equal(t, "1", song.ID)

	stored, ok, err := repo.GetSong(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, song, stored)
}

/*
TestImproveMetadata_Idempotent checks that merging the same suggestion twice
leaves the same record as merging it once.
*/
func TestImproveMetadata_Idempotent(t *testing.T) {
	completer := &stubCompleter{reply: `{"genre":"Rock","instrumentation":"Guitars"}`}
	service, _ := newCatalog(t, completer)
	ctx := context.Background()

	first, err := service.ImproveMetadata(ctx, "2")
	require.NoError(t, err)
	second, err := service.ImproveMetadata(ctx, "2")
	require.NoError(t, err)

	assert.Equal(t, first.Song, second.Song)
	assert.Equal(t, []string{"acoustic", "breakup"}, second.Song.Tags)
}

/*
TestImproveMetadata_Fallbacks merges the literal suggestions of the degraded outcomes.
*/
func TestImproveMetadata_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		completer *stubCompleter
		outcome   enrichment.Outcome
		genre     string
		tags      []string
	}{
		{"unconfigured", &stubCompleter{err: completion.ErrNotConfigured}, enrichment.OutcomeUnconfigured, "Unknown", []string{}},
		{"upstream_failure", &stubCompleter{err: completion.ErrUpstream}, enrichment.OutcomeFailed, "Pop", []string{"Energetic"}},
		{"garbage_reply", &stubCompleter{reply: "not json"}, enrichment.OutcomeFailed, "Pop", []string{"Energetic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newCatalog(t, tt.completer)

			result, err := service.ImproveMetadata(context.Background(), "1")
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, result.Enrichment)
			assert.Equal(t, tt.genre, *result.Song.Genre)
			assert.Equal(t, tt.tags, result.Song.Tags)
			assert.Equal(t, 120, *result.Song.BPM)
		})
	}
}

/*
TestImproveMetadata_LandsAfterCancellation stores the merge even when the
request is cancelled while the enrichment call is outstanding.
*/
func TestImproveMetadata_LandsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completer := &cancellingCompleter{cancel: cancel, reply: `{"genre":"Rock","bpm":140}`}
	service, repo := newCatalog(t, completer)

	enriched, err := service.ImproveMetadata(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Rock", *enriched.Song.Genre)

	stored, ok, err := repo.GetSong(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rock", *stored.Genre)
	assert.Equal(t, 140, *stored.BPM)
}

/*
TestUploadSong_LandsAfterCancellation stores the upload when the request is
cancelled during enrichment.
*/
func TestUploadSong_LandsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completer := &cancellingCompleter{cancel: cancel, reply: `{"genre":"Folk"}`}
	service, repo := newCatalog(t, completer)

	uploaded, err := service.UploadSong(ctx, catalog.UploadInput{Title: "Late Night"})
	require.NoError(t, err)

	stored, ok, err := repo.GetSong(context.Background(), uploaded.Song.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Late Night", stored.Title)
	assert.Equal(t, "Folk", *stored.Genre)
}

/*
TestImproveMetadata_UnknownSong returns NotFound without calling the service.
*/
func TestImproveMetadata_UnknownSong(t *testing.T) {
	completer := &stubCompleter{reply: `{"genre":"Rock"}`}
	service, repo := newCatalog(t, completer)

	_, err := service.ImproveMetadata(context.Background(), "missing")
	notFound(t, err)
	assert.Zero(t, completer.calls)

	songs, err := repo.ListSongs(context.Background())
	require.NoError(t, err)
	assert.Len(t, songs, 2)
}

// # Repository round trip

/*
TestMemoryRepository_RoundTrip reads back exactly what was stored, as a copy.
*/
func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := catalog.NewMemoryRepository(0)
	ctx := context.Background()

	song := catalog.Song{ID: "x", Title: "T", Artist: "A", Genre: pointer.To("Jazz"), Tags: []string{"a"}}
	_, err := repo.AddSong(ctx, song)
	require.NoError(t, err)

	got, ok, err := repo.GetSong(ctx, "x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, song, got)

	*got.Genre = "Mutated"
	got.Tags[0] = "mutated"

	again, _, err := repo.GetSong(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Jazz", *again.Genre)
	assert.Equal(t, []string{"a"}, again.Tags)
}

/*
TestMemoryRepository_UpdateOneField changes only the patched field.
*/
func TestMemoryRepository_UpdateOneField(t *testing.T) {
	repo := catalog.NewMemoryRepository(0, catalog.SeedSongs(time.Now())...)
	ctx := context.Background()

	before, err := repo.ListSongs(ctx)
	require.NoError(t, err)

	_, ok, err := repo.UpdateSong(ctx, "2", catalog.SongPatch{Genre: pointer.To("Jazz")})
	require.NoError(t, err)
	require.True(t, ok)

	after, err := repo.ListSongs(ctx)
	require.NoError(t, err)

	expected := before[1].Clone()
	expected.Genre = pointer.To("Jazz")
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, expected, after[1])
}

/*
TestMemoryRepository_UpdateUnknown reports not found and changes nothing.
*/
func TestMemoryRepository_UpdateUnknown(t *testing.T) {
	repo := catalog.NewMemoryRepository(0, catalog.SeedSongs(time.Now())...)
	ctx := context.Background()

	_, ok, err := repo.UpdateSong(ctx, "nope", catalog.SongPatch{Title: pointer.To("X")})
	require.NoError(t, err)
	assert.False(t, ok)

	songs, err := repo.ListSongs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Neon Highway", songs[0].Title)
	assert.Equal(t, "Broken Strings", songs[1].Title)
}

// # Upload

/*
TestUploadSong_Defaults fills title, artist, writers and splits.
*/
func TestUploadSong_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		input catalog.UploadInput
		title string
	}{
		{"explicit_title", catalog.UploadInput{Title: " Night Swim ", FileName: "x.wav"}, "Night Swim"},
		{"file_name", catalog.UploadInput{FileName: "demo.final.mp3"}, "demo.final"},
		{"dot_file", catalog.UploadInput{FileName: ".wav"}, "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newCatalog(t, &stubCompleter{err: completion.ErrNotConfigured})

			result, err := service.UploadSong(context.Background(), tt.input)
			require.NoError(t, err)

			song := result.Song
			assert.Equal(t, tt.title, song.Title)
			assert.Equal(t, "Alex Rivera", song.Artist)
			assert.Equal(t, "Alex Rivera (100%)", song.Writers)
			assert.Equal(t, "100", song.Splits)
			assert.Equal(t, "u1", song.UserID)
			assert.NotEmpty(t, song.ID)
			assert.Equal(t, "Unknown", *song.Genre)

			songs, err := repo.ListSongs(context.Background())
			require.NoError(t, err)
			assert.Len(t, songs, 3)
			assert.Equal(t, song, songs[2])
		})
	}
}

/*
TestUploadSong_RequiresTitleOrFile rejects an empty upload before enrichment.
*/
func TestUploadSong_RequiresTitleOrFile(t *testing.T) {
	completer := &stubCompleter{}
	service, _ := newCatalog(t, completer)

	_, err := service.UploadSong(context.Background(), catalog.UploadInput{Artist: "Someone"})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Zero(t, completer.calls)
}

// # Pitch

/*
TestGeneratePitch returns the reply verbatim or the literal fallback.
*/
func TestGeneratePitch(t *testing.T) {
	service, _ := newCatalog(t, &stubCompleter{reply: "A glowing pitch."})
	pitch, err := service.GeneratePitch(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "A glowing pitch.", pitch.Pitch)
	assert.Equal(t, enrichment.OutcomeSuccess, pitch.Outcome)

	service, _ = newCatalog(t, &stubCompleter{err: errors.New("boom")})
	pitch, err = service.GeneratePitch(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, enrichment.SyncPitchFailed, pitch.Pitch)

	_, err = service.GeneratePitch(context.Background(), "missing")
	notFound(t, err)
}

// # Manual edit

/*
TestUpdateSong validates the patch and reports unknown ids.
*/
func TestUpdateSong(t *testing.T) {
	service, _ := newCatalog(t, &stubCompleter{})
	ctx := context.Background()

	song, err := service.UpdateSong(ctx, "1", catalog.SongPatch{ISRC: pointer.To("USRC17607839")})
	require.NoError(t, err)
	assert.Equal(t, "USRC17607839", *song.ISRC)
	assert.Equal(t, "Synthwave", *song.Genre)

	_, err = service.UpdateSong(ctx, "1", catalog.SongPatch{Title: pointer.To("  ")})
	assert.True(t, apperr.IsAppError(err))

	_, err = service.UpdateSong(ctx, "1", catalog.SongPatch{BPM: pointer.To(-3)})
	assert.True(t, apperr.IsAppError(err))

	_, err = service.UpdateSong(ctx, "missing", catalog.SongPatch{ISRC: pointer.To("X")})
	notFound(t, err)
}

// # HTTP

/*
TestHandler_EnrichRoundTrip drives the enrich endpoint through the router.
*/
func TestHandler_EnrichRoundTrip(t *testing.T) {
	service, _ := newCatalog(t, &stubCompleter{reply: `{"genre":"Rock"}`})
	router := catalog.NewHandler(service).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/1/enrich", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data catalog.EnrichedSong `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Rock", *body.Data.Song.Genre)
	assert.Equal(t, enrichment.OutcomeSuccess, body.Data.Enrichment)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/missing/enrich", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_UploadAndList creates a song and sees it listed.
*/
func TestHandler_UploadAndList(t *testing.T) {
	service, _ := newCatalog(t, &stubCompleter{err: completion.ErrNotConfigured})
	router := catalog.NewHandler(service).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"file_name":"sunrise.wav"}`)))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []catalog.Song `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "sunrise", body.Data[2].Title)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
