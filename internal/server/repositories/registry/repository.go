// Package registry implements the durable user registry: two coupled
// mappings, user id to record and username to user id, persisted as a single
// flat JSON document that is rewritten in full after every mutation.
package registry

import (
	"context"

	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

// Repository is the registry contract. Implementations must keep the two
// mappings consistent with each other and make every mutating method a
// single atomic step under concurrent callers: the existence check inside
// Create and the insert it guards must not interleave with another Create.
type Repository interface {
	// GetByID returns the user the given id (token) belongs to.
	GetByID(ctx context.Context, id string) (*models.User, bool)

	// GetByUsername returns the user registered under username.
	GetByUsername(ctx context.Context, username string) (*models.User, bool)

	// Create inserts user into both mappings and commits. It fails with
	// common.ErrorUserExists if the username is already indexed.
	Create(ctx context.Context, user *models.User) error

	// UpdateCWD sets the user's current directory and commits. It fails with
	// common.ErrorNotFound if the id is unknown.
	UpdateCWD(ctx context.Context, id string, cwd string) error

	// Len reports the number of registered users.
	Len() int
}
