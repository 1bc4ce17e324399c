// Package fsutil writes edited documents back to disk safely: atomic
// replacement, detection of concurrent modification, and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// BackupSuffix is appended to a path to name its backup.
const BackupSuffix = ".codeblock.bak"

// ErrModified is returned when a file changed between reading and writing it.
var ErrModified = errors.New("file modified since it was read")

// Snapshot records the state of a file when it was read.
type Snapshot struct {
	Path string
	Mode os.FileMode
	Hash [sha256.Size]byte
}

// ReadSnapshot reads path and records its mode and content hash.
func ReadSnapshot(ctx context.Context, path string) ([]byte, *Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat: %w", err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("read %s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read: %w", err)
	}

	return content, &Snapshot{
		Path: path,
		Mode: stat.Mode().Perm(),
		Hash: sha256.Sum256(content),
	}, nil
}

// Unchanged returns ErrModified if the file no longer holds the content it
// had when the snapshot was taken.
func (s *Snapshot) Unchanged() error {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", s.Path, ErrModified)
		}
		return fmt.Errorf("reread: %w", err)
	}
	if sha256.Sum256(content) != s.Hash {
		return fmt.Errorf("%s: %w", s.Path, ErrModified)
	}
	return nil
}

// WriteAtomic replaces path with content through a temp file in the same
// directory and a rename. A zero mode means DefaultFileMode. On error the
// original file is left untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// Update writes content over the file a snapshot was taken of. It fails with
// ErrModified if the file changed in the meantime, and returns false without
// writing when content equals what was read.
func Update(ctx context.Context, snap *Snapshot, content []byte) (bool, error) {
	if sha256.Sum256(content) == snap.Hash {
		return false, nil
	}
	if err := snap.Unchanged(); err != nil {
		return false, err
	}
	if err := WriteAtomic(ctx, snap.Path, content, snap.Mode); err != nil {
		return false, err
	}
	return true, nil
}

// CreateBackup copies path to path+BackupSuffix and returns the backup path.
// An existing backup is kept so repeated edits never lose the oldest
// content; the returned path is empty in that case.
func CreateBackup(ctx context.Context, path string) (string, error) {
	backupPath := path + BackupSuffix

	if _, err := os.Stat(backupPath); err == nil {
		return "", nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat backup: %w", err)
	}

	content, snap, err := ReadSnapshot(ctx, path)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, snap.Mode); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}
