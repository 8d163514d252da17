package checkpoint

import "time"

// Format constants.
const (
	MagicBytes      = "GEO1"
	FormatVersion   = 1
	FixedHeaderSize = 64 // magic + version + flags + reserved + sizes + checksum
	HeaderAlignment = 64 // payload starts on a 64-byte boundary
	ChecksumSize    = 32 // SHA-256
	ChecksumOffset  = 0x20
)

// Flags for the .geo format.
const (
	FlagZstd uint32 = 1 << 0 // bit 0: payload is a single zstd frame
)

// Validation limits for untrusted files.
const (
	MaxHeaderSize   = 16 * 1024 * 1024 // 16MB - maximum JSON header size
	MaxEntryCount   = 4096             // maximum tangent entries per file
	MaxEntryNameLen = 256              // maximum entry name length
)

// Header is the JSON header of a .geo file.
type Header struct {
	FormatVersion   int               `json:"format_version"`
	GeodesicVersion string            `json:"geodesic_version"` // library version that wrote the file
	CreatedAt       time.Time         `json:"created_at"`
	Point           PointMeta         `json:"point"`
	Tangents        []EntryMeta       `json:"tangents"`
	Metadata        map[string]string `json:"metadata"`
	Run             *RunMeta          `json:"run,omitempty"` // optimizer run state (optional)
}

// RunMeta records where the consumer's optimization run stood when the
// checkpoint was written.
type RunMeta struct {
	Step      int64   `json:"step"`      // iteration count
	Objective float64 `json:"objective"` // objective value at the checkpoint
}

// PointMeta describes the base point stored in a .geo file.
type PointMeta struct {
	ID     string `json:"id"`   // identity token (UUID)
	Rows   int    `json:"rows"` // codomain dimension
	Cols   int    `json:"cols"` // domain dimension
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}

// EntryMeta describes one tangent generator in the payload. Generators
// are square with the base point's domain dimension; offsets are relative
// to the start of the uncompressed payload.
type EntryMeta struct {
	Name   string `json:"name"`
	Dim    int    `json:"dim"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}
