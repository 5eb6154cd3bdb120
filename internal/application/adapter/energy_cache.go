// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// EnergyEstimate holds a cached BMR/TDEE pair for a user profile snapshot.
type EnergyEstimate struct {
	BMR  int `json:"bmr"`
	TDEE int `json:"tdee"`
}

// EnergyCache defines the interface for caching energy expenditure
// estimates. Implementations must be failure tolerant: a cache outage
// degrades to recomputation, never to an error surfaced to the caller.
type EnergyCache interface {
	// Get retrieves a cached estimate. The second return value reports
	// whether the key was present.
	Get(ctx context.Context, key string) (*EnergyEstimate, bool)

	// Set stores an estimate under the key.
	Set(ctx context.Context, key string, estimate *EnergyEstimate)

	// Invalidate removes any estimate stored under the key.
	Invalidate(ctx context.Context, key string)
}
