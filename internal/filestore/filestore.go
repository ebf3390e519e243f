// Package filestore persists uploaded statement binaries on local disk,
// encrypted at rest with a fernet key.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
)

// Store writes and reads encrypted statement files under a base directory.
type Store struct {
	dir string
	key *fernet.Key
}

// New creates a Store rooted at dir. An empty encoded key generates an
// ephemeral one, which makes previously stored files unreadable after a
// restart; production deployments should configure a stable key.
func New(dir, encodedKey string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	var key *fernet.Key
	if encodedKey == "" {
		key = new(fernet.Key)
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}
	} else {
		keys, err := fernet.DecodeKeys(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("invalid upload encryption key: %w", err)
		}
		key = keys[0]
	}

	return &Store{dir: dir, key: key}, nil
}

// Save encrypts data and writes it under a fresh name carrying ext.
// It returns the stored file's path.
func (s *Store) Save(data []byte, ext string) (string, error) {
	token, err := fernet.EncryptAndSign(data, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt statement file: %w", err)
	}

	path := filepath.Join(s.dir, uuid.New().String()+ext)
	if err := os.WriteFile(path, token, 0o640); err != nil {
		return "", fmt.Errorf("failed to write statement file: %w", err)
	}
	return path, nil
}

// Load reads and decrypts the file at path.
func (s *Store) Load(path string) ([]byte, error) {
	token, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	data := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{s.key})
	if data == nil {
		return nil, fmt.Errorf("failed to decrypt statement file %s", filepath.Base(path))
	}
	return data, nil
}

// LoadTemp decrypts the file at path into a scoped temporary file for
// extractors that need filesystem access. The returned cleanup function must
// be called on every exit path.
func (s *Store) LoadTemp(path string) (tmpPath string, cleanup func(), err error) {
	data, err := s.Load(path)
	if err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "statement-*"+filepath.Ext(path))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
