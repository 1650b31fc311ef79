package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/spf13/afero"
)

// FileStore persists a single user's tokens as a JSON document keyed by
// AccessTokenKey, RefreshTokenKey and TokenExpiryKey. The session ID in ctx
// is ignored.
type FileStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

func NewFileStore(fsys afero.Fs, path string) *FileStore {
	return &FileStore{fs: fsys, path: path}
}

// DefaultPath returns ~/.mailctl/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".mailctl", "session.json"), nil
}

func (s *FileStore) Load(ctx context.Context) (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Tokens{}, nil
	}
	if err != nil {
		return Tokens{}, fmt.Errorf("read session file: %w", err)
	}

	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Tokens{}, fmt.Errorf("decode session file: %w", err)
	}

	t := Tokens{
		AccessToken:  doc[AccessTokenKey],
		RefreshToken: doc[RefreshTokenKey],
	}
	if raw := doc[TokenExpiryKey]; raw != "" {
		if exp, err := strconv.ParseInt(raw, 10, 64); err == nil {
			t.Expiry = exp
		}
	}
	return t, nil
}

func (s *FileStore) Save(ctx context.Context, t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]string{
		AccessTokenKey:  t.AccessToken,
		RefreshTokenKey: t.RefreshToken,
	}
	if t.Expiry > 0 {
		doc[TokenExpiryKey] = strconv.FormatInt(t.Expiry, 10)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return afero.WriteFile(s.fs, s.path, data, 0o600)
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
