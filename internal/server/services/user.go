// Package services contains the server-side business logic behind the wire
// protocol: session handling, sandboxed navigation, and chunked file
// transfer. Services return the sentinel errors from internal/common; the
// router maps them onto wire messages.
package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/filex"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/registry"
)

// UserService provides session-related operations:
//   - Register: create users and their home directories
//   - Login: verify credentials and hand out the token
//   - Authenticate: the gate every other action passes through
type UserService struct {
	repo      registry.Repository
	storeRoot string
}

// NewUserService constructs a UserService over the registry and server config.
func NewUserService(repo registry.Repository, cfg *config.Config) *UserService {
	return &UserService{repo: repo, storeRoot: cfg.StorePath}
}

// Register creates a new user with the given username and password, creates
// the user's home directory under the store root, and commits the registry.
// The returned user's ID doubles as the session token.
//
// The pre-check below gives the common duplicate a fast answer; the
// authoritative uniqueness check runs inside repo.Create's critical section,
// so two concurrent registrations of the same username cannot both win.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, common.ErrorInvalidArguments
	}

	if _, ok := s.repo.GetByUsername(ctx, username); ok {
		return nil, common.ErrorUserExists
	}

	home, err := filex.EnsureDir(filepath.Join(s.storeRoot, username))
	if err != nil {
		return nil, fmt.Errorf("creating home directory: %w", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		UserName: username,
		Password: password,
		Dir:      home,
		CWD:      home,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns the user whose ID the client
// echoes as its bearer token from then on. Nothing is committed: logging in
// does not mutate the registry.
//
// A caller whose supplied token already maps to a valid user is refused with
// ErrorAlreadyLoggedIn. This is a session-confusion guard, not single-session
// enforcement; the server keeps no session list to enforce one with.
func (s *UserService) Login(ctx context.Context, token, username, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, common.ErrorInvalidArguments
	}

	if _, ok := s.repo.GetByID(ctx, token); ok {
		return nil, common.ErrorAlreadyLoggedIn
	}

	user, ok := s.repo.GetByUsername(ctx, username)
	if !ok {
		return nil, common.ErrorUserNotFound
	}

	if user.Password != password {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// Authenticate resolves a bearer token to its user. The token is the user's
// id; there is no expiry and no revocation, so authentication reduces to
// registry membership.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	user, ok := s.repo.GetByID(ctx, token)
	if !ok {
		return nil, common.ErrorNotAuthenticated
	}
	return user, nil
}
