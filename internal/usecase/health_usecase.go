package usecase

import "context"

// HealthStatus reports service readiness.
type HealthStatus struct {
	Status     string
	Database   string
	HotelCount int64
}

// HealthUsecase defines the interface for the health endpoint.
type HealthUsecase interface {
	// Check reports database reachability and the current inventory size.
	Check(ctx context.Context) (*HealthStatus, error)
}
