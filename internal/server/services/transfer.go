package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/pathx"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

// ReadChunkSize is the window of a single read_file call.
const ReadChunkSize = 100

// TransferService implements chunked file I/O: append-only writes and
// windowed sequential reads backed by an in-memory table of open cursors.
//
// The cursor table is keyed by user id only — a user has at most one open
// cursor, whatever file it points at. The table has its own mutex, separate
// from the registry lock, so unrelated users' read streams never contend
// with registry commits. Cursors are not persisted; a restart loses them.
type TransferService struct {
	mu      sync.Mutex
	cursors map[string]*os.File
}

func NewTransferService() *TransferService {
	return &TransferService{cursors: make(map[string]*os.File)}
}

// WriteFile appends content to filename under the user's current directory,
// creating the file if needed. Every write is prefixed with a newline
// separator; that separator is part of the wire contract. No cursor is
// retained — the file is closed before returning.
func (s *TransferService) WriteFile(ctx context.Context, user *models.User, filename, content string) error {
	if !pathx.ValidFileName(filename) {
		return common.ErrorInvalidFileName
	}

	path := pathx.Resolve(user.CWD, filename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadChunk returns the next window of up to ReadChunkSize bytes for the
// user, advancing the cursor.
//
// If no cursor is open, the named file is opened under the user's current
// directory and registered. If a cursor is already open, reading continues
// from its offset regardless of the filename requested: the cursor is keyed
// by user, not by (user, file), so switching names mid-stream keeps
// returning bytes from the originally opened file. That quirk is observable
// protocol behavior and is kept deliberately.
//
// At end of file the empty string is returned and the cursor stays open
// until the client clears it via CloseCursor.
func (s *TransferService) ReadChunk(ctx context.Context, user *models.User, filename string) (string, error) {
	if !pathx.ValidFileName(filename) {
		return "", common.ErrorInvalidFileName
	}

	path := pathx.Resolve(user.CWD, filename)
	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return "", common.ErrorFileNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.cursors[user.ID]
	if !ok {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		s.cursors[user.ID] = f
	}

	buf := make([]byte, ReadChunkSize)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	return string(buf[:n]), nil
}

// CloseCursor discards the user's open read cursor, if any. The client
// triggers this by sending read_file with an empty filename; closing when no
// cursor is open is a no-op.
func (s *TransferService) CloseCursor(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.cursors[userID]; ok {
		_ = f.Close()
		delete(s.cursors, userID)
	}
}
