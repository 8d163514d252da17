package checkpoint

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func validPointMeta() PointMeta {
	return PointMeta{ID: "test", Rows: 4, Cols: 2, Offset: 0, Size: 64}
}

func TestValidateHeaderAccepts(t *testing.T) {
	h := &Header{
		Point: validPointMeta(),
		Tangents: []EntryMeta{
			{Name: "momentum", Dim: 2, Offset: 64, Size: 32},
			{Name: "gradient", Dim: 2, Offset: 96, Size: 32},
		},
	}
	if err := validateHeader(h, 128); err != nil {
		t.Errorf("Expected valid header, got: %v", err)
	}
}

func TestValidateHeaderRejects(t *testing.T) {
	tests := []struct {
		name    string
		header  *Header
		payload int64
		wantErr error
	}{
		{
			name: "negative offset",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "m", Dim: 2, Offset: -32, Size: 32}},
			},
			payload: 128,
			wantErr: ErrNegativeOffset,
		},
		{
			name: "size shape mismatch",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "m", Dim: 2, Offset: 64, Size: 24}},
			},
			payload: 128,
			wantErr: ErrSizeMismatch,
		},
		{
			name: "out of bounds",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "m", Dim: 2, Offset: 112, Size: 32}},
			},
			payload: 128,
			wantErr: ErrOutOfBounds,
		},
		{
			// offset+size wraps negative here; the bounds check must not
			// be fooled by the overflow.
			name: "offset near MaxInt64",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "m", Dim: 2, Offset: math.MaxInt64 - 8, Size: 32}},
			},
			payload: 128,
			wantErr: ErrOutOfBounds,
		},
		{
			// Squaring this dim wraps its element count to zero, which a
			// zero size would otherwise match.
			name: "dim overflow",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "m", Dim: int(int64(1) << 32), Offset: 64, Size: 0}},
			},
			payload: 128,
			wantErr: ErrSizeMismatch,
		},
		{
			name: "overlapping entries",
			header: &Header{
				Point: validPointMeta(),
				Tangents: []EntryMeta{
					{Name: "m", Dim: 2, Offset: 48, Size: 32},
				},
			},
			payload: 128,
			wantErr: ErrOffsetOverlap,
		},
		{
			name: "empty name",
			header: &Header{
				Point:    validPointMeta(),
				Tangents: []EntryMeta{{Name: "", Dim: 2, Offset: 64, Size: 32}},
			},
			payload: 128,
			wantErr: ErrInvalidEntryName,
		},
		{
			name: "duplicate name",
			header: &Header{
				Point: validPointMeta(),
				Tangents: []EntryMeta{
					{Name: "m", Dim: 2, Offset: 64, Size: 32},
					{Name: "m", Dim: 2, Offset: 96, Size: 32},
				},
			},
			payload: 128,
			wantErr: ErrInvalidEntryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateHeader(tt.header, tt.payload)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateHeaderTooManyEntries(t *testing.T) {
	h := &Header{Point: validPointMeta()}
	for i := 0; i <= MaxEntryCount; i++ {
		h.Tangents = append(h.Tangents, EntryMeta{
			Name:   fmt.Sprintf("t%d", i),
			Dim:    2,
			Offset: 64 + int64(i)*32,
			Size:   32,
		})
	}

	err := validateHeader(h, 64+int64(MaxEntryCount+1)*32)
	if !errors.Is(err, ErrTooManyEntries) {
		t.Errorf("Expected ErrTooManyEntries, got: %v", err)
	}
}
