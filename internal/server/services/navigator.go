package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/pathx"
	"github.com/dmitrijs2005/filekeeper/internal/protocol"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/registry"
)

// NavigatorService implements directory operations inside a user's sandbox:
// listing the current directory, creating folders, and changing the current
// directory (the one durable per-user navigation state).
type NavigatorService struct {
	repo registry.Repository
}

func NewNavigatorService(repo registry.Repository) *NavigatorService {
	return &NavigatorService{repo: repo}
}

// List returns the regular files directly inside the user's current
// directory, in the enumeration order of the underlying directory listing.
// Subdirectories are excluded, there is no recursion, and no ordering is
// guaranteed. CTime is the entry's modification time in Unix seconds.
func (s *NavigatorService) List(ctx context.Context, user *models.User) ([]protocol.FileInfo, error) {
	entries, err := os.ReadDir(user.CWD)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", user.CWD, err)
	}

	files := make([]protocol.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, protocol.FileInfo{
			Name:  entry.Name(),
			Size:  info.Size(),
			CTime: info.ModTime().Unix(),
		})
	}
	return files, nil
}

// CreateFolder creates a new directory under the user's current directory.
// The name is validated before any filesystem call.
func (s *NavigatorService) CreateFolder(ctx context.Context, user *models.User, name string) error {
	if !pathx.ValidFolderName(name) {
		return common.ErrorInvalidFolderName
	}

	dir := pathx.Resolve(user.CWD, name)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return common.ErrorFolderExists
	}

	if err := os.Mkdir(dir, 0o770); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// ChangeFolder moves the user's current directory to name and commits the
// registry (cwd is durable). The special token ".." moves up one level but
// is refused when the current directory is already the user's home root.
//
// The root check compares the last path segment of cwd against the username
// instead of doing a canonical ancestry check. That reproduces the policy
// this server is compatible with; it trusts segment naming and is a known
// limitation, kept for behavioral parity rather than hardened away.
func (s *NavigatorService) ChangeFolder(ctx context.Context, user *models.User, name string) error {
	if name != pathx.ParentFolder && !pathx.ValidFolderName(name) {
		return common.ErrorInvalidFolderName
	}

	if name == pathx.ParentFolder && filepath.Base(user.CWD) == user.UserName {
		return common.ErrorInvalidFolderName
	}

	dir := pathx.Resolve(user.CWD, name)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return common.ErrorFolderNotFound
	}

	if err := s.repo.UpdateCWD(ctx, user.ID, dir); err != nil {
		return err
	}
	user.CWD = dir
	return nil
}
