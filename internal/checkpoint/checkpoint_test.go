package checkpoint

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/geodesic-ml/geodesic/internal/backend/dense"
	"github.com/geodesic-ml/geodesic/internal/manifold"
)

// newTestState builds a 4×2 base point with two anchored tangent vectors.
func newTestState(t *testing.T) *State {
	t.Helper()
	rng := rand.New(rand.NewSource(7))

	w, err := dense.RandomIsometry(4, 2, rng)
	if err != nil {
		t.Fatalf("Failed to build isometry: %v", err)
	}
	point := manifold.NewPoint(w)

	tangents := make(map[string]*manifold.Tangent[*dense.Map])
	for _, name := range []string{"momentum", "gradient"} {
		tan, err := manifold.NewTangent(point, dense.RandomAntiHermitian(2, rng))
		if err != nil {
			t.Fatalf("Failed to build tangent %q: %v", name, err)
		}
		tangents[name] = tan
	}

	return &State{
		Point:    point,
		Tangents: tangents,
		Metadata: map[string]string{"transport": "parallel"},
		Run:      &RunMeta{Step: 100, Objective: 0.125},
	}
}

func verifyRestored(t *testing.T, saved, loaded *State) {
	t.Helper()

	if !saved.Point.Same(loaded.Point) {
		t.Error("Restored point must carry the saved identity token")
	}
	if !saved.Point.Map().Equal(loaded.Point.Map()) {
		t.Error("Restored point entries differ")
	}
	if len(loaded.Tangents) != len(saved.Tangents) {
		t.Fatalf("Expected %d tangents, got %d", len(saved.Tangents), len(loaded.Tangents))
	}
	for name, tan := range saved.Tangents {
		restored, ok := loaded.Tangents[name]
		if !ok {
			t.Fatalf("Tangent %q not found", name)
		}
		if !tan.Generator().Equal(restored.Generator()) {
			t.Errorf("Tangent %q entries differ", name)
		}
		if !loaded.Point.Same(restored.Base()) {
			t.Errorf("Tangent %q not anchored at the restored point", name)
		}
	}
	if loaded.Metadata["transport"] != saved.Metadata["transport"] {
		t.Errorf("Metadata mismatch: %v", loaded.Metadata)
	}
	if saved.Run != nil {
		if loaded.Run == nil {
			t.Fatal("Run metadata lost")
		}
		if loaded.Run.Step != saved.Run.Step || loaded.Run.Objective != saved.Run.Objective {
			t.Errorf("Run metadata mismatch: got %+v, want %+v", loaded.Run, saved.Run)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.geo")
	state := newTestState(t)

	if err := Save(path, state, SaveOptions{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	verifyRestored(t, state, loaded)
}

func TestRoundTripCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.geo")
	state := newTestState(t)

	if err := Save(path, state, SaveOptions{Compress: true}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	// The flag must be set in the fixed header.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if flags := binary.LittleEndian.Uint32(raw[8:12]); flags&FlagZstd == 0 {
		t.Error("FlagZstd not set on compressed file")
	}

	loaded, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	verifyRestored(t, state, loaded)
}

func TestRoundTripBuffer(t *testing.T) {
	state := newTestState(t)

	var buf bytes.Buffer
	if err := WriteTo(&buf, state, SaveOptions{}); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	loaded, err := ReadFrom(&buf, LoadOptions{})
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	verifyRestored(t, state, loaded)
}

func TestRoundTripNoTangents(t *testing.T) {
	state := newTestState(t)
	state.Tangents = nil

	var buf bytes.Buffer
	if err := WriteTo(&buf, state, SaveOptions{}); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	loaded, err := ReadFrom(&buf, LoadOptions{})
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if !state.Point.Same(loaded.Point) {
		t.Error("Restored point must carry the saved identity token")
	}
	if len(loaded.Tangents) != 0 {
		t.Errorf("Expected no tangents, got %d", len(loaded.Tangents))
	}
}

func TestCorruptionDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.geo")
	if err := Save(path, newTestState(t), SaveOptions{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	corruptLastByte(t, path)

	_, err := Load(path, LoadOptions{})
	if err == nil {
		t.Fatal("Expected checksum validation to fail")
	}
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Expected ErrChecksumMismatch, got: %v", err)
	}
}

func TestSkipChecksumValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.geo")
	if err := Save(path, newTestState(t), SaveOptions{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	corruptLastByte(t, path)

	if _, err := Load(path, LoadOptions{}); err == nil {
		t.Fatal("Expected checksum validation to fail")
	}
	if _, err := Load(path, LoadOptions{SkipChecksumValidation: true}); err != nil {
		t.Fatalf("Expected load to succeed with validation skipped, got: %v", err)
	}
}

func corruptLastByte(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		t.Fatalf("Failed to open file: %v", err)
	}
	if _, err := file.Seek(info.Size()-1, 0); err != nil {
		t.Fatalf("Failed to seek: %v", err)
	}
	if _, err := file.Write([]byte{0xFF}); err != nil {
		t.Fatalf("Failed to corrupt file: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}
}

func TestInvalidMagic(t *testing.T) {
	junk := make([]byte, FixedHeaderSize)
	copy(junk, "NOPE")

	_, err := ReadFrom(bytes.NewReader(junk), LoadOptions{})
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("Expected ErrInvalidMagic, got: %v", err)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	fixed := make([]byte, FixedHeaderSize)
	copy(fixed, MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], 99)

	_, err := ReadFrom(bytes.NewReader(fixed), LoadOptions{})
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Expected ErrUnsupportedVersion, got: %v", err)
	}
}

func TestTruncatedFile(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, newTestState(t), SaveOptions{}); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}

	half := buf.Bytes()[:buf.Len()/2]
	if _, err := ReadFrom(bytes.NewReader(half), LoadOptions{}); err == nil {
		t.Fatal("Expected truncated read to fail")
	}
}

// TestMalformedEntryTable feeds ReadFrom a well-formed container whose
// entry table points far outside the payload. The offsets are chosen so
// that offset+size wraps negative; header validation must reject the
// entry instead of slicing the payload with it.
func TestMalformedEntryTable(t *testing.T) {
	payload := make([]byte, 64) // 4×2 point, nothing else

	header := Header{
		FormatVersion: FormatVersion,
		Point:         PointMeta{ID: "ab0b7cf6-2a1c-4a5d-9c63-0c1f8e6a1d42", Rows: 4, Cols: 2, Offset: 0, Size: 64},
		Tangents: []EntryMeta{
			{Name: "momentum", Dim: 2, Offset: math.MaxInt64 - 8, Size: 32},
		},
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		t.Fatalf("Failed to marshal header: %v", err)
	}

	// The checksum only covers the payload, so a hostile entry table
	// arrives with a checksum that verifies.
	checksum := ComputeChecksum(payload)

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(FormatVersion))
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(payload)))
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	var buf bytes.Buffer
	buf.Write(fixed)
	buf.Write(headerJSON)
	pos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment; padding > 0 {
		buf.Write(make([]byte, padding))
	}
	buf.Write(payload)

	_, err = ReadFrom(&buf, LoadOptions{})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got: %v", err)
	}
}

func TestSaveRejectsForeignTangent(t *testing.T) {
	state := newTestState(t)

	rng := rand.New(rand.NewSource(8))
	other, err := dense.RandomIsometry(4, 2, rng)
	if err != nil {
		t.Fatalf("Failed to build isometry: %v", err)
	}
	elsewhere := manifold.NewPoint(other)
	foreign, err := manifold.NewTangent(elsewhere, dense.RandomAntiHermitian(2, rng))
	if err != nil {
		t.Fatalf("Failed to build tangent: %v", err)
	}
	state.Tangents["foreign"] = foreign

	var buf bytes.Buffer
	err = WriteTo(&buf, state, SaveOptions{})
	if !errors.Is(err, manifold.ErrBasePointMismatch) {
		t.Errorf("Expected ErrBasePointMismatch, got: %v", err)
	}
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.geo")
	state := newTestState(t)
	if err := Save(path, state, SaveOptions{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	header, err := Inspect(path)
	if err != nil {
		t.Fatalf("Failed to inspect: %v", err)
	}

	if header.FormatVersion != FormatVersion {
		t.Errorf("Expected version %d, got %d", FormatVersion, header.FormatVersion)
	}
	if header.Point.ID != state.Point.ID().String() {
		t.Errorf("Point ID mismatch: %s", header.Point.ID)
	}
	if header.Point.Rows != 4 || header.Point.Cols != 2 {
		t.Errorf("Point shape mismatch: %dx%d", header.Point.Rows, header.Point.Cols)
	}
	if len(header.Tangents) != 2 {
		t.Fatalf("Expected 2 tangent entries, got %d", len(header.Tangents))
	}
	// Entries are laid out in name order.
	if header.Tangents[0].Name != "gradient" || header.Tangents[1].Name != "momentum" {
		t.Errorf("Unexpected entry order: %q, %q", header.Tangents[0].Name, header.Tangents[1].Name)
	}
	if header.Metadata["transport"] != "parallel" {
		t.Errorf("Metadata mismatch: %v", header.Metadata)
	}
	if header.Run == nil || header.Run.Step != 100 {
		t.Errorf("Run metadata mismatch: %+v", header.Run)
	}
}
