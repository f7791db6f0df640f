package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// Actor is the resolved identity performing an operation. Guest checkout
// produces an anonymous actor with a zero ID and no email; the core never
// fabricates contact data for it.
type Actor struct {
	ID      kernel.UUID
	Email   string
	IsAdmin bool
}

// IsAnonymous reports whether the actor has no authenticated identity.
func (a Actor) IsAnonymous() bool {
	return a.ID.Validate() != nil
}

// AnonymousActor returns the synthetic identity used for guest checkout.
func AnonymousActor() Actor {
	return Actor{}
}

// Authorizer resolves a caller credential (e.g. a bearer token) into an
// Actor. An empty credential resolves to the anonymous actor rather than
// an error; only malformed or expired credentials fail.
type Authorizer interface {
	Resolve(ctx context.Context, credential string) (Actor, error)
}
