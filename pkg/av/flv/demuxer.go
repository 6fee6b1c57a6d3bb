package flv

import (
	"github.com/pkg/errors"
)

// Demuxer walks an in-memory FLV buffer and produces the ordered sequence of
// structural records: file header, then size markers and tags interleaved
// until the buffer is exhausted.
type Demuxer struct{}

func NewDemuxer() *Demuxer {
	return &Demuxer{}
}

// Demux parses the whole buffer. A malformed file header fails the parse with
// zero records. Any structural error inside the body terminates the loop
// early; records produced up to that point are kept on the returned Dump and
// the terminating error is carried in Dump.Err.
func (d *Demuxer) Demux(data []byte) (*Dump, error) {
	cur := NewCursor(data)

	header, err := ParseFileHeader(cur)
	if err != nil {
		return nil, errors.Wrap(err, "parse file header")
	}

	dump := &Dump{Header: header}

	// Marker preceding the first tag. Its expected size is 0 since no tag
	// has been consumed yet.
	marker, err := readSizeMarker(cur, 0, 0)
	if err != nil {
		dump.Err = err
		return dump, nil
	}
	dump.Records = append(dump.Records, marker)

	for index := uint32(1); cur.Remaining() > 0; index++ {
		frame, err := ParseTagFrame(cur)
		if err != nil {
			dump.Err = errors.Wrapf(err, "tag %d", index)
			return dump, nil
		}

		body, err := DecodeTagBody(frame, cur)
		if err != nil {
			dump.Err = errors.Wrapf(err, "tag %d", index)
			return dump, nil
		}

		dump.Records = append(dump.Records, &TagRecord{
			Index: index,
			Frame: frame,
			Body:  body,
		})

		marker, err := readSizeMarker(cur, index, TagHeaderSize+frame.DataSize)
		if err != nil {
			dump.Err = errors.Wrapf(err, "size marker after tag %d", index)
			return dump, nil
		}
		dump.Records = append(dump.Records, marker)
	}

	return dump, nil
}

func readSizeMarker(cur *Cursor, index, expected uint32) (*SizeMarkerRecord, error) {
	if cur.Remaining() < prevTagSizeSize {
		return nil, errors.Wrap(ErrTruncated, "size marker")
	}

	declared, err := cur.ReadU32BE()
	if err != nil {
		return nil, errors.Wrap(err, "read previous tag size")
	}

	return &SizeMarkerRecord{
		Index:    index,
		Declared: declared,
		Expected: expected,
	}, nil
}
