// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint saves and restores manifold optimizer state in the
// native .geo format.
//
// # Overview
//
// This package contains:
//   - State: a base point plus the tangent vectors anchored at it
//   - Save, Load: file round trips with checksum verification
//   - WriteTo, ReadFrom: the same format over arbitrary streams
//   - Inspect: header-only reads for listing checkpoint contents
//
// The format records the base point's identity token, so a restored point
// is Same as the point that was saved: tangent vectors loaded with it
// remain combinable, and vectors held elsewhere in the process still
// refuse to mix with it unless they were anchored to the same token.
//
// # Basic Usage
//
//	import (
//	    "github.com/geodesic-ml/geodesic/checkpoint"
//	)
//
//	func main() {
//	    state := &checkpoint.State{
//	        Point:    point,
//	        Tangents: map[string]*manifold.Tangent[*dense.Map]{"momentum": m},
//	        Run:      &checkpoint.RunMeta{Step: 100, Objective: loss},
//	    }
//	    if err := checkpoint.Save("step_100.geo", state, checkpoint.SaveOptions{Compress: true}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    restored, err := checkpoint.Load("step_100.geo", checkpoint.LoadOptions{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    point.Same(restored.Point) // true
//	}
package checkpoint
