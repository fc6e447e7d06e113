// Package io writes generated documents to disk.
//
// # Atomic Writes
//
// Output is never written in place. [CreateAtomic] opens a temporary file in
// the destination directory; [AtomicFile.Commit] syncs, closes and renames it
// over the destination. Until Commit succeeds the destination is untouched, and
// [AtomicFile.Close] discards the temporary file:
//
//	f, err := io.CreateAtomic("target.pdf", 0o644)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	if _, err := f.Write(data); err != nil {
//	    return err
//	}
//	return f.Commit()
//
// [WriteFileAtomic] wraps that sequence for a byte slice.
//
// A failed write therefore never leaves a truncated document behind, and an
// existing file at the destination survives until it is replaced in full.
package io
