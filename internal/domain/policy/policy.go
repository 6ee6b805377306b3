// Package policy is the single capability check every mutation passes through.
package policy

import (
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID int64
	Role   entity.Role
}

// ActorOf builds the actor for an authenticated user.
func ActorOf(u *entity.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}

// Capability describes what an operation requires from its actor.
type Capability struct {
	role    entity.Role
	ownerID *int64
	denied  error
}

// Require returns a capability satisfied by actors holding role.
func Require(role entity.Role) Capability {
	return Capability{role: role}
}

// OwnedBy additionally requires the actor to be ownerID. denied is returned
// when the role matches but the actor is not the owner.
func (c Capability) OwnedBy(ownerID int64, denied error) Capability {
	c.ownerID = &ownerID
	c.denied = denied

	return c
}

// Check returns nil when actor satisfies the capability. A role mismatch yields
// ErrForbidden; an ownership mismatch yields the error given to OwnedBy.
func Check(actor Actor, c Capability) error {
	if actor.Role != c.role {
		return domainerrors.ErrForbidden.WithDetails("requires role " + c.role.String())
	}

	if c.ownerID != nil && *c.ownerID != actor.UserID {
		if c.denied != nil {
			return c.denied
		}

		return domainerrors.ErrForbidden
	}

	return nil
}
