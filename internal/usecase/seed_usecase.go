package usecase

import "context"

// SeedResult reports the outcome of a seed operation.
type SeedResult struct {
	Inserted int64
	Deleted  int64
}

// SeedUsecase defines the interface for loading and clearing sample hotel data.
// Intended for development and demo environments only.
type SeedUsecase interface {
	// SeedHotels inserts the sample inventory. It refuses to run when the
	// inventory already contains hotels.
	SeedHotels(ctx context.Context) (*SeedResult, error)

	// ClearHotels removes the entire hotel inventory.
	ClearHotels(ctx context.Context) (*SeedResult, error)
}
