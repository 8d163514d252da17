package checkpoint

import (
	"fmt"
	"sort"
)

const float64Size = 8

// region is the common offset layout of the point and tangent entries.
type region struct {
	name     string
	offset   int64
	size     int64
	elements int64 // expected float64 count for the declared shape
}

// validateHeader checks the entry table of an untrusted header against the
// uncompressed payload size. Malformed offsets could otherwise read one
// entry's data as another's or run past the payload.
func validateHeader(h *Header, payloadSize int64) error {
	if len(h.Tangents) > MaxEntryCount {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyEntries, len(h.Tangents), MaxEntryCount)
	}

	regions := make([]region, 0, len(h.Tangents)+1)
	regions = append(regions, region{
		name:     "point",
		offset:   h.Point.Offset,
		size:     h.Point.Size,
		elements: int64(h.Point.Rows) * int64(h.Point.Cols),
	})

	seen := make(map[string]struct{}, len(h.Tangents))
	for _, e := range h.Tangents {
		if e.Name == "" || len(e.Name) > MaxEntryNameLen {
			return fmt.Errorf("%w: %q", ErrInvalidEntryName, e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidEntryName, e.Name)
		}
		seen[e.Name] = struct{}{}

		regions = append(regions, region{
			name:     e.Name,
			offset:   e.Offset,
			size:     e.Size,
			elements: int64(e.Dim) * int64(e.Dim),
		})
	}

	sort.Slice(regions, func(i, j int) bool { return regions[i].offset < regions[j].offset })

	for i, r := range regions {
		if r.offset < 0 || r.size < 0 {
			return fmt.Errorf("%w: entry %q offset=%d size=%d", ErrNegativeOffset, r.name, r.offset, r.size)
		}
		// The element product wraps for dimensions near 2^32, so a
		// non-positive count is malformed rather than empty.
		if r.elements <= 0 {
			return fmt.Errorf("%w: entry %q element count %d", ErrSizeMismatch, r.name, r.elements)
		}
		if r.size != r.elements*float64Size {
			return fmt.Errorf("%w: entry %q declares %d elements but %d bytes",
				ErrSizeMismatch, r.name, r.elements, r.size)
		}
		// Checked without computing offset+size, which can wrap past
		// MaxInt64 for hostile offsets.
		if r.size > payloadSize || r.offset > payloadSize-r.size {
			return fmt.Errorf("%w: entry %q offset=%d size=%d with payload size %d",
				ErrOutOfBounds, r.name, r.offset, r.size, payloadSize)
		}
		if i < len(regions)-1 && r.offset+r.size > regions[i+1].offset {
			next := regions[i+1]
			return fmt.Errorf("%w: %q [%d-%d] and %q at offset %d",
				ErrOffsetOverlap, r.name, r.offset, r.offset+r.size, next.name, next.offset)
		}
	}

	return nil
}
