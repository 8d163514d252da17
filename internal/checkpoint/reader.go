package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/geodesic-ml/geodesic/internal/backend/dense"
	"github.com/geodesic-ml/geodesic/internal/manifold"
)

// LoadOptions configures checkpoint reading.
type LoadOptions struct {
	SkipChecksumValidation bool // skip payload checksum verification (trusted input only)
}

// Load reads a .geo file from path and rebuilds the manifold state. The
// restored point carries the identity token recorded at save time, so it
// is Same as the point that was checkpointed.
func Load(path string, opts LoadOptions) (*State, error) {
	//nolint:gosec // G304: opens a caller-supplied path
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadFrom(file, opts)
}

// Inspect reads only the header of a .geo file, without touching the
// payload. Useful for listing checkpoint contents.
func Inspect(path string) (Header, error) {
	//nolint:gosec // G304: opens a caller-supplied path
	file, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	header, _, _, _, err := readHeader(file)
	return header, err
}

// ReadFrom reads a .geo stream and rebuilds the manifold state. The format
// is strictly linear, so any reader works; no seeking is required.
func ReadFrom(r io.Reader, opts LoadOptions) (*State, error) {
	header, flags, payloadSize, checksum, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	stored := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	payload := stored
	if flags&FlagZstd != 0 {
		payload, err = decompressPayload(stored)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress payload: %w", err)
		}
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(payload), checksum); err != nil {
			return nil, err
		}
	}

	if err := validateHeader(&header, int64(len(payload))); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	point, err := restorePoint(header.Point, payload)
	if err != nil {
		return nil, err
	}

	tangents := make(map[string]*manifold.Tangent[*dense.Map], len(header.Tangents))
	for _, e := range header.Tangents {
		gen, err := dense.NewMap(e.Dim, e.Dim, decodeFloats(payload[e.Offset:e.Offset+e.Size]))
		if err != nil {
			return nil, fmt.Errorf("failed to restore tangent %q: %w", e.Name, err)
		}
		tan, err := manifold.NewTangent(point, gen)
		if err != nil {
			return nil, fmt.Errorf("failed to restore tangent %q: %w", e.Name, err)
		}
		tangents[e.Name] = tan
	}

	return &State{
		Point:    point,
		Tangents: tangents,
		Metadata: header.Metadata,
		Run:      header.Run,
	}, nil
}

// readHeader consumes the fixed header, the JSON header and the alignment
// padding, leaving the reader positioned at the payload.
func readHeader(r io.Reader) (Header, uint32, uint64, [32]byte, error) {
	var checksum [32]byte

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return Header{}, 0, 0, checksum, fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return Header{}, 0, 0, checksum, ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return Header{}, 0, 0, checksum, fmt.Errorf("%w: got %d, expected %d",
			ErrUnsupportedVersion, version, FormatVersion)
	}

	flags := binary.LittleEndian.Uint32(fixed[8:12])
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	payloadSize := binary.LittleEndian.Uint64(fixed[24:32])
	copy(checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return Header{}, 0, 0, checksum, ErrHeaderTooLarge
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return Header{}, 0, 0, checksum, fmt.Errorf("failed to read header JSON: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return Header{}, 0, 0, checksum, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	if padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment; padding > 0 {
		if _, err := io.ReadFull(r, make([]byte, padding)); err != nil {
			return Header{}, 0, 0, checksum, fmt.Errorf("failed to read padding: %w", err)
		}
	}

	return header, flags, payloadSize, checksum, nil
}

func restorePoint(meta PointMeta, payload []byte) (*manifold.Point[*dense.Map], error) {
	id, err := uuid.Parse(meta.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse point id %q: %w", meta.ID, err)
	}

	w, err := dense.NewMap(meta.Rows, meta.Cols, decodeFloats(payload[meta.Offset:meta.Offset+meta.Size]))
	if err != nil {
		return nil, fmt.Errorf("failed to restore point: %w", err)
	}

	return manifold.RestorePoint(id, w), nil
}

// decodeFloats reads little-endian float64 values from buf. The caller
// guarantees len(buf) is a multiple of 8 via header validation.
func decodeFloats(buf []byte) []float64 {
	vals := make([]float64, len(buf)/float64Size)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*float64Size:]))
	}
	return vals
}

func decompressPayload(stored []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(stored, nil)
}
