package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/geodesic-ml/geodesic/internal/backend/dense"
	"github.com/geodesic-ml/geodesic/internal/manifold"
)

const geodesicVersion = "0.1.0" // Current library version

// State is the manifold state a checkpoint captures: a base point and the
// tangent vectors anchored at it, keyed by name (e.g. "momentum"). Run is
// optional optimizer progress carried alongside.
type State struct {
	Point    *manifold.Point[*dense.Map]
	Tangents map[string]*manifold.Tangent[*dense.Map]
	Metadata map[string]string
	Run      *RunMeta
}

// SaveOptions configures checkpoint writing.
type SaveOptions struct {
	Compress bool // compress the payload as a single zstd frame
}

// Save writes state to path in .geo format.
func Save(path string, state *State, opts SaveOptions) error {
	//nolint:gosec // G304: opens a caller-supplied path
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteTo(file, state, opts); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteTo writes state in .geo format to an arbitrary writer. The format
// is single-pass, so this works for buffers and network connections too.
func WriteTo(w io.Writer, state *State, opts SaveOptions) error {
	if state == nil || state.Point == nil {
		return fmt.Errorf("checkpoint: state has no base point")
	}

	point := state.Point.Map()

	// Lay out the payload: point first, then tangents in name order so
	// identical states produce identical files.
	names := make([]string, 0, len(state.Tangents))
	for name := range state.Tangents {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion:   FormatVersion,
		GeodesicVersion: geodesicVersion,
		CreatedAt:       time.Now().UTC(),
		Point: PointMeta{
			ID:     state.Point.ID().String(),
			Rows:   point.Rows(),
			Cols:   point.Cols(),
			Offset: 0,
			Size:   int64(point.Rows()*point.Cols()) * float64Size,
		},
		Tangents: make([]EntryMeta, 0, len(names)),
		Metadata: state.Metadata,
		Run:      state.Run,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	payload := encodeFloats(point.RawData(), nil)
	offset := header.Point.Size

	for _, name := range names {
		tan := state.Tangents[name]
		if !state.Point.Same(tan.Base()) {
			return fmt.Errorf("%w: tangent %q anchored at %v, checkpoint point is %v",
				manifold.ErrBasePointMismatch, name, tan.Base().ID(), state.Point.ID())
		}
		gen := tan.Generator()
		size := int64(gen.Rows()*gen.Cols()) * float64Size

		header.Tangents = append(header.Tangents, EntryMeta{
			Name:   name,
			Dim:    gen.Rows(),
			Offset: offset,
			Size:   size,
		})

		payload = encodeFloats(gen.RawData(), payload)
		offset += size
	}

	checksum := ComputeChecksum(payload)

	stored := payload
	flags := uint32(0)
	if opts.Compress {
		compressed, err := compressPayload(payload)
		if err != nil {
			return fmt.Errorf("failed to compress payload: %w", err)
		}
		stored = compressed
		flags |= FlagZstd
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	// Fixed header (64 bytes).
	fixed := make([]byte, FixedHeaderSize)
	// 0x00-0x03: magic bytes "GEO1"
	copy(fixed[0:4], MagicBytes)
	// 0x04-0x07: version
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(FormatVersion))
	// 0x08-0x0B: flags
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F: reserved, zero from make()
	// 0x10-0x17: header size
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	// 0x18-0x1F: payload size as stored
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(stored)))
	// 0x20-0x3F: SHA-256 of the uncompressed payload
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}

	// Pad so the payload starts on a HeaderAlignment boundary.
	currentPos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment; padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

// encodeFloats appends the little-endian bytes of vals to dst.
func encodeFloats(vals []float64, dst []byte) []byte {
	for _, v := range vals {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
	}
	return dst
}

func compressPayload(payload []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(payload, make([]byte, 0, len(payload)/2)), nil
}
