package users

import (
	"context"
)

// Repository is the credential store: an ordered collection of users that
// is always read and written as a whole.
type Repository interface {
	// GetAll loads the entire collection. A store that does not exist yet
	// is initialized empty first.
	GetAll(ctx context.Context) ([]User, error)

	// SaveAll serializes and overwrites the entire collection.
	SaveAll(ctx context.Context, all []User) error
}
