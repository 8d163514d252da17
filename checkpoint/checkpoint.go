// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package checkpoint

import (
	"io"

	"github.com/geodesic-ml/geodesic/internal/checkpoint"
)

// State is the manifold state a checkpoint captures: a base point and the
// tangent vectors anchored at it, keyed by name.
type State = checkpoint.State

// SaveOptions configures checkpoint writing.
type SaveOptions = checkpoint.SaveOptions

// LoadOptions configures checkpoint reading.
type LoadOptions = checkpoint.LoadOptions

// Header is the JSON header of a .geo file.
type Header = checkpoint.Header

// PointMeta describes the base point stored in a .geo file.
type PointMeta = checkpoint.PointMeta

// EntryMeta describes one tangent generator in the payload.
type EntryMeta = checkpoint.EntryMeta

// RunMeta records optimizer run progress carried in a checkpoint.
type RunMeta = checkpoint.RunMeta

// Errors returned when reading .geo files.
var (
	ErrInvalidMagic       = checkpoint.ErrInvalidMagic
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
	ErrHeaderTooLarge     = checkpoint.ErrHeaderTooLarge
	ErrChecksumMismatch   = checkpoint.ErrChecksumMismatch
	ErrTooManyEntries     = checkpoint.ErrTooManyEntries
	ErrInvalidEntryName   = checkpoint.ErrInvalidEntryName
	ErrNegativeOffset     = checkpoint.ErrNegativeOffset
	ErrOutOfBounds        = checkpoint.ErrOutOfBounds
	ErrOffsetOverlap      = checkpoint.ErrOffsetOverlap
	ErrSizeMismatch       = checkpoint.ErrSizeMismatch
)

// Save writes state to path in .geo format.
func Save(path string, state *State, opts SaveOptions) error {
	return checkpoint.Save(path, state, opts)
}

// Load reads a .geo file and rebuilds the manifold state, verifying the
// payload checksum unless opts skip it.
func Load(path string, opts LoadOptions) (*State, error) {
	return checkpoint.Load(path, opts)
}

// WriteTo writes state in .geo format to an arbitrary writer.
func WriteTo(w io.Writer, state *State, opts SaveOptions) error {
	return checkpoint.WriteTo(w, state, opts)
}

// ReadFrom reads a .geo stream and rebuilds the manifold state.
func ReadFrom(r io.Reader, opts LoadOptions) (*State, error) {
	return checkpoint.ReadFrom(r, opts)
}

// Inspect reads only the header of a .geo file.
func Inspect(path string) (Header, error) {
	return checkpoint.Inspect(path)
}
