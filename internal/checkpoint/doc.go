// Package checkpoint provides the native .geo format for saving and
// restoring optimizer state on the isometry manifold: one base point and
// the tangent vectors anchored at it.
//
//	Format Structure:
//	  [4 bytes:  Magic "GEO1"]
//	  [4 bytes:  Version (uint32 LE)]
//	  [4 bytes:  Flags (uint32 LE)]
//	  [4 bytes:  Reserved]
//	  [8 bytes:  Header Size (uint64 LE)]
//	  [8 bytes:  Payload Size (uint64 LE, as stored)]
//	  [32 bytes: SHA-256 of the uncompressed payload]
//	  [Header: JSON metadata]
//	  [Payload: float64 LE entries, 64-byte aligned, optionally zstd]
//
// The header records the base point's identity token, so a point loaded
// from a checkpoint is Same as the point that was saved and tangent
// vectors restored with it remain combinable. The payload checksum is
// verified on load unless explicitly skipped.
//
// Example usage:
//
//	state := &checkpoint.State{
//	    Point:    point,
//	    Tangents: map[string]*manifold.Tangent[*dense.Map]{"momentum": m},
//	}
//	if err := checkpoint.Save("step_100.geo", state, checkpoint.SaveOptions{Compress: true}); err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := checkpoint.Load("step_100.geo", checkpoint.LoadOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	point.Same(restored.Point) // true
package checkpoint
