package auth

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created through the NewActor factory.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is an authenticated staff member performing an operation. Identity
// and role come from the outer gate; the core only decides what the role
// permits.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was built through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Can reports whether the actor's role is granted the capability.
func (a Actor) Can(c Capability) bool {
	return a.role.Can(c)
}
