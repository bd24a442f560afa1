package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Authorization is the outcome of a (simulated) card authorization.
type Authorization struct {
	Reference    string
	AuthorizedAt time.Time
}

// Authorizer sits in front of writeback: an order status is only flipped
// after authorization returns. Satisfied by *SimulatedAuthorizer; a real
// acquirer integration would implement the same interface.
type Authorizer interface {
	Authorize(ctx context.Context, orderNo string) (*Authorization, error)
}

// SimulatedAuthorizer approves every payment after a fixed processing
// delay. It stands in for a real gateway; the delay keeps the surface
// behavior honest about authorization taking time.
type SimulatedAuthorizer struct {
	Delay time.Duration
}

// Authorize waits out the simulated processing delay and returns a fresh
// transaction reference. The only failure mode is context cancellation.
func (a *SimulatedAuthorizer) Authorize(ctx context.Context, orderNo string) (*Authorization, error) {
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &Authorization{
		Reference:    uuid.NewString(),
		AuthorizedAt: time.Now(),
	}, nil
}
