// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setup

import (
	"context"
	"time"

	"github.com/taibuivan/indiepub/internal/platform/constants"
	"github.com/taibuivan/indiepub/internal/platform/memstore"
)

// Repository defines the data access contract for the publishing setup.
type Repository interface {
	GetPRO(ctx context.Context) (PROProfile, error)
	UpdatePRO(ctx context.Context, mutate func(*PROProfile)) (PROProfile, error)
	GetCompany(ctx context.Context) (Company, error)
	UpdateCompany(ctx context.Context, mutate func(*Company)) (Company, error)
	ListRoyaltySources(ctx context.Context) ([]RoyaltySource, error)
	SetRoyaltyStatus(ctx context.Context, id string, status Status) (RoyaltySource, bool, error)
	ToggleRoyaltySource(ctx context.Context, id string) (RoyaltySource, bool, error)
}

// Seed is the initial state of a [MemoryRepository].
type Seed struct {
	PRO       PROProfile
	Company   Company
	Royalties []RoyaltySource
}

// DefaultSeed returns the setup a fresh process starts with.
func DefaultSeed() Seed {
	return Seed{
		PRO:     PROProfile{ID: "1", UserID: constants.DashboardUserID},
		Company: Company{ID: "1", UserID: constants.DashboardUserID, EntityType: "LLC"},
		Royalties: []RoyaltySource{
			{ID: "1", Name: "The MLC", Status: StatusNotStarted, Notes: "For mechanicals"},
			{ID: "2", Name: "SoundExchange", Status: StatusNotStarted, Notes: "For digital performance royalties"},
			{ID: "3", Name: "YouTube Content ID", Status: StatusNotStarted, Notes: "Via distributor"},
		},
	}
}

// MemoryRepository is the in-process [Repository].
type MemoryRepository struct {
	pro       *memstore.Singleton[PROProfile]
	company   *memstore.Singleton[Company]
	royalties *memstore.Collection[RoyaltySource]
}

// NewMemoryRepository returns a repository holding seed.
func NewMemoryRepository(latency time.Duration, seed Seed) *MemoryRepository {
	return &MemoryRepository{
		pro:       memstore.NewSingleton(latency, seed.PRO),
		company:   memstore.NewSingleton(latency, seed.Company),
		royalties: memstore.NewCollection(latency, seed.Royalties...),
	}
}

func (repository *MemoryRepository) GetPRO(ctx context.Context) (PROProfile, error) {
	return repository.pro.Get(ctx)
}

func (repository *MemoryRepository) UpdatePRO(ctx context.Context, mutate func(*PROProfile)) (PROProfile, error) {
	return repository.pro.Update(ctx, mutate)
}

func (repository *MemoryRepository) GetCompany(ctx context.Context) (Company, error) {
	return repository.company.Get(ctx)
}

func (repository *MemoryRepository) UpdateCompany(ctx context.Context, mutate func(*Company)) (Company, error) {
	return repository.company.Update(ctx, mutate)
}

func (repository *MemoryRepository) ListRoyaltySources(ctx context.Context) ([]RoyaltySource, error) {
	return repository.royalties.GetAll(ctx)
}

func (repository *MemoryRepository) SetRoyaltyStatus(ctx context.Context, id string, status Status) (RoyaltySource, bool, error) {
	return repository.royalties.Update(ctx, id, func(source *RoyaltySource) { source.Status = status })
}

// ToggleRoyaltySource flips the status inside one atomic update.
func (repository *MemoryRepository) ToggleRoyaltySource(ctx context.Context, id string) (RoyaltySource, bool, error) {
	return repository.royalties.Update(ctx, id, func(source *RoyaltySource) { source.Status = source.Status.Toggled() })
}
