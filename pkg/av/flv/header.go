package flv

import (
	"bytes"

	"github.com/pkg/errors"
)

var signature = []byte{'F', 'L', 'V'}

// FileHeader is the decoded 9-byte FLV file header.
type FileHeader struct {
	Version    uint8
	HasAudio   bool
	HasVideo   bool
	DataOffset uint32
}

// StandardDataOffset reports whether DataOffset matches the 9-byte header
// layout every standard FLV file uses. A non-standard value is surfaced to
// the caller instead of being followed.
func (h *FileHeader) StandardDataOffset() bool {
	return h.DataOffset == HeaderSize
}

// ParseFileHeader decodes the file header at the cursor's current position
// and leaves the cursor at byte 9, regardless of the declared DataOffset.
func ParseFileHeader(cur *Cursor) (*FileHeader, error) {
	if cur.Remaining() < HeaderSize {
		return nil, errors.Wrap(ErrTruncated, "file header")
	}

	sig, err := cur.ReadBytes(3)
	if err != nil {
		return nil, errors.Wrap(err, "read signature")
	}
	if !bytes.Equal(sig, signature) {
		return nil, ErrBadSignature
	}

	version, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read version")
	}

	flags, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read type flags")
	}

	dataOffset, err := cur.ReadU32BE()
	if err != nil {
		return nil, errors.Wrap(err, "read data offset")
	}

	return &FileHeader{
		Version:    version,
		HasAudio:   flags&flagAudio != 0,
		HasVideo:   flags&flagVideo != 0,
		DataOffset: dataOffset,
	}, nil
}
