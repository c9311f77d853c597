package mcp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// newFileMode is used when the config file does not exist yet. The file holds
// an API key.
const newFileMode fs.FileMode = 0o600

// Result describes a completed MergeAndPersist.
type Result struct {
	// Path is the file written.
	Path string
	// Created is true when no file existed before.
	Created bool
	// Replaced is true when an entry with the same name was overwritten.
	Replaced bool
	// Changed is false when the entry was already identical.
	Changed bool
}

// MergeAndPersist writes fragment to mcpServers.<name> in the JSON file at
// path, creating the file and its directory as needed. Everything else in
// the file is kept. The file is replaced by rename, so readers never see a
// partial write, and the read-modify-write runs under a lock file. When path
// is a symlink, the file it points to is updated and the link is kept.
func MergeAndPersist(path, name string, fragment any) (*Result, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}

	target, err := resolveTarget(path)
	if err != nil {
		return nil, err
	}
	if targetDir := filepath.Dir(target); targetDir != dir {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrCreateDir, targetDir, err)
		}
	}

	lock, err := AcquireLock(target)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	doc, exists, err := LoadDocument(target)
	if err != nil {
		return nil, err
	}

	put, err := doc.PutServer(name, fragment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}

	data, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	mode := newFileMode
	if info, statErr := os.Stat(target); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := writeFileAtomic(target, data, mode); err != nil {
		return nil, err
	}

	return &Result{
		Path:     path,
		Created:  !exists,
		Replaced: put.Replaced,
		Changed:  put.Changed,
	}, nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet is
// returned unchanged; a dangling link resolves to the file it names.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		info, lerr := os.Lstat(path)
		if lerr != nil || info.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}
		dest, rerr := os.Readlink(path)
		if rerr != nil {
			return "", fmt.Errorf("%w %s: %w", ErrRead, path, rerr)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		return resolveTarget(dest)
	}
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return resolved, nil
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it over path.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Standalone renders {"mcpServers": {name: fragment}} without touching disk.
func Standalone(name string, fragment any) ([]byte, error) {
	doc := NewDocument()
	if _, err := doc.PutServer(name, fragment); err != nil {
		return nil, err
	}
	data, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
