package flv

import (
	"github.com/pkg/errors"
)

// TagFrame is the fixed 11-byte header preceding every tag body.
type TagFrame struct {
	TagType   TagType // 1 byte
	DataSize  uint32  // 3 bytes, body length excluding frame and trailing size marker
	Timestamp uint32  // 3 bytes + 1 extension byte as the upper 8 bits, milliseconds
	StreamID  uint32  // 3 bytes, always 0 in valid files but not rejected otherwise
}

// ParseTagFrame decodes the tag header at the cursor's current position.
func ParseTagFrame(cur *Cursor) (*TagFrame, error) {
	if cur.Remaining() < TagHeaderSize {
		return nil, errors.Wrap(ErrTruncated, "tag frame")
	}

	code, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read tag type")
	}

	dataSize, err := cur.ReadU24BE()
	if err != nil {
		return nil, errors.Wrap(err, "read data size")
	}

	timestamp, err := cur.ReadU24BE()
	if err != nil {
		return nil, errors.Wrap(err, "read timestamp")
	}

	extended, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read timestamp extension")
	}

	streamID, err := cur.ReadU24BE()
	if err != nil {
		return nil, errors.Wrap(err, "read stream id")
	}

	return &TagFrame{
		TagType:   TagType(code),
		DataSize:  dataSize,
		Timestamp: uint32(extended)<<24 | timestamp,
		StreamID:  streamID,
	}, nil
}
