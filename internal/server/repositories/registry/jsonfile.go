package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

// document is the on-disk layout: the whole registry serialized as one JSON
// object. Users maps user id to record, UserIDs maps username to user id;
// every entry in one has its counterpart in the other.
type document struct {
	Users   map[string]*models.User `json:"users"`
	UserIDs map[string]string       `json:"user_ids"`
}

// JSONFileRepository keeps the registry in memory and persists it to a single
// JSON file. One mutex guards every read-modify-write sequence, so
// per-username uniqueness holds under concurrent Create calls and a commit
// never captures a half-applied mutation.
type JSONFileRepository struct {
	mu   sync.Mutex
	path string
	doc  document
}

// NewJSONFileRepository loads the registry from path and writes it straight
// back, so the file exists after startup. A missing or undecodable file
// yields an empty registry: the load is deliberately fail-soft so a corrupt
// database never blocks the server from starting. Any other read error, and
// any write error, is returned.
func NewJSONFileRepository(path string) (*JSONFileRepository, error) {
	r := &JSONFileRepository{
		path: path,
		doc: document{
			Users:   map[string]*models.User{},
			UserIDs: map[string]string{},
		},
	}

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	if err == nil {
		var doc document
		if jsonErr := json.Unmarshal(b, &doc); jsonErr == nil && doc.Users != nil && doc.UserIDs != nil {
			r.doc = doc
		}
	}

	// the record id lives in the document key
	for id, u := range r.doc.Users {
		u.ID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.commit(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *JSONFileRepository) GetByID(ctx context.Context, id string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.doc.Users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (r *JSONFileRepository) GetByUsername(ctx context.Context, username string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.doc.UserIDs[username]
	if !ok {
		return nil, false
	}
	u, ok := r.doc.Users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (r *JSONFileRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doc.UserIDs[user.UserName]; ok {
		return common.ErrorUserExists
	}

	cp := *user
	r.doc.Users[user.ID] = &cp
	r.doc.UserIDs[user.UserName] = user.ID

	if err := r.commit(); err != nil {
		// a user that was never persisted must not stay in the mappings
		delete(r.doc.Users, user.ID)
		delete(r.doc.UserIDs, user.UserName)
		return err
	}
	return nil
}

func (r *JSONFileRepository) UpdateCWD(ctx context.Context, id string, cwd string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.doc.Users[id]
	if !ok {
		return common.ErrorNotFound
	}

	prev := u.CWD
	u.CWD = cwd

	if err := r.commit(); err != nil {
		u.CWD = prev
		return err
	}
	return nil
}

func (r *JSONFileRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.doc.Users)
}

// commit rewrites the whole document. Callers must hold r.mu. A failure here
// is fatal for the request that triggered it; there is no retry.
func (r *JSONFileRepository) commit() error {
	b, err := json.Marshal(r.doc)
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := os.WriteFile(r.path, b, 0o600); err != nil {
		return fmt.Errorf("writing registry %s: %w", r.path, err)
	}
	return nil
}
