// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"time"

	"github.com/taibuivan/indiepub/internal/platform/constants"
	"github.com/taibuivan/indiepub/internal/platform/memstore"
	"github.com/taibuivan/indiepub/pkg/pointer"
)

// MemoryRepository is the in-process [Repository].
type MemoryRepository struct {
	songs *memstore.Collection[Song]
}

// NewMemoryRepository returns a repository holding seed.
func NewMemoryRepository(latency time.Duration, seed ...Song) *MemoryRepository {
	return &MemoryRepository{songs: memstore.NewCollection(latency, seed...)}
}

func (repository *MemoryRepository) ListSongs(ctx context.Context) ([]Song, error) {
	return repository.songs.GetAll(ctx)
}

func (repository *MemoryRepository) GetSong(ctx context.Context, id string) (Song, bool, error) {
	return repository.songs.Get(ctx, id)
}

func (repository *MemoryRepository) AddSong(ctx context.Context, song Song) (Song, error) {
	return repository.songs.Add(ctx, song)
}

func (repository *MemoryRepository) UpdateSong(ctx context.Context, id string, patch SongPatch) (Song, bool, error) {
	return repository.songs.Update(ctx, id, func(song *Song) { song.Apply(patch) })
}

// SeedSongs returns the catalog a fresh process starts with.
func SeedSongs(now time.Time) []Song {
	return []Song{
		{
			ID: "1", UserID: constants.DashboardUserID,
			Title: "Neon Highway", Artist: "The Midnight Echo",
			BPM: pointer.To(120), Genre: pointer.To("Synthwave"), Mood: pointer.To("Nostalgic"),
			Writers: "John Doe (50%), Jane Smith (50%)", Splits: "50/50",
			Tags:      []string{"retro", "night drive"},
			CreatedAt: now,
		},
		{
			ID: "2", UserID: constants.DashboardUserID,
			Title: "Broken Strings", Artist: "The Midnight Echo",
			BPM: pointer.To(85), Genre: pointer.To("Acoustic Pop"), Mood: pointer.To("Sad"),
			Writers: "John Doe (100%)", Splits: "100",
			Tags:      []string{"acoustic", "breakup"},
			CreatedAt: now,
		},
	}
}
