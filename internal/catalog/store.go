// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// Repository defines the data access contract for songs.
//
// Get and Update report ok=false for an unknown id; that is not an error.
type Repository interface {
	ListSongs(ctx context.Context) ([]Song, error)
	GetSong(ctx context.Context, id string) (Song, bool, error)
	AddSong(ctx context.Context, song Song) (Song, error)
	UpdateSong(ctx context.Context, id string, patch SongPatch) (Song, bool, error)
}
