package io

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/moatarget/pkg/errors"
)

// AtomicFile is a temporary file that replaces its destination on Commit.
type AtomicFile struct {
	f    *os.File
	path string
	perm os.FileMode
	done bool
}

// CreateAtomic opens a temporary file next to path. The caller must call
// Close, typically deferred, whether or not Commit is reached.
func CreateAtomic(path string, perm os.FileMode) (*AtomicFile, error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return &AtomicFile{f: f, path: path, perm: perm}, nil
}

// Write appends p to the temporary file.
func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.done {
		return 0, errors.New(errors.ErrCodeInternal, "write to closed file %s", a.path)
	}
	n, err := a.f.Write(p)
	if err != nil {
		return n, errors.Wrap(errors.ErrCodeRenderingFailure, err, "write %s", a.path)
	}
	return n, nil
}

// Commit flushes the temporary file to disk and renames it to the
// destination.
func (a *AtomicFile) Commit() error {
	if a.done {
		return errors.New(errors.ErrCodeInternal, "commit of closed file %s", a.path)
	}
	tmp := a.f.Name()
	if err := a.f.Sync(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "sync %s", a.path)
	}
	if err := a.f.Chmod(a.perm); err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "chmod %s", a.path)
	}
	a.done = true
	if err := a.f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "close %s", a.path)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "rename to %s", a.path)
	}
	return nil
}

// Close discards the temporary file unless Commit has succeeded.
// It is safe to call more than once.
func (a *AtomicFile) Close() error {
	if a.done {
		return nil
	}
	a.done = true
	tmp := a.f.Name()
	err := a.f.Close()
	if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

// WriteFileAtomic writes data to path through a temporary file, so path holds
// either its previous content or all of data.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := CreateAtomic(path, perm)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Commit()
}
