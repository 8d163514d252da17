// Package main provides the Geodesic CLI.
package main

import (
	"fmt"
	"os"

	"github.com/geodesic-ml/geodesic/checkpoint"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Geodesic %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "Usage: geodesic inspect <file.geo>")
				os.Exit(1)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Geodesic - Riemannian optimization primitives for isometric maps")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  inspect <file>    List the contents of a .geo checkpoint")
}

func inspect(path string) error {
	header, err := checkpoint.Inspect(path)
	if err != nil {
		return err
	}

	fmt.Printf("Checkpoint %s\n", path)
	fmt.Printf("  written by:  geodesic %s (format v%d)\n", header.GeodesicVersion, header.FormatVersion)
	fmt.Printf("  created at:  %s\n", header.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  base point:  %dx%d  id=%s\n", header.Point.Rows, header.Point.Cols, header.Point.ID)
	if header.Run != nil {
		fmt.Printf("  run:         step %d, objective %g\n", header.Run.Step, header.Run.Objective)
	}
	if len(header.Tangents) > 0 {
		fmt.Println("  tangents:")
		for _, e := range header.Tangents {
			fmt.Printf("    %-16s %dx%d (%d bytes)\n", e.Name, e.Dim, e.Dim, e.Size)
		}
	}
	if len(header.Metadata) > 0 {
		fmt.Println("  metadata:")
		for k, v := range header.Metadata {
			fmt.Printf("    %s = %s\n", k, v)
		}
	}
	return nil
}
