package flv

import (
	"github.com/pkg/errors"
)

// TagBody is one of ScriptBody, AudioBody, VideoBody or RawBody. Each variant
// keeps the undecoded remainder of the tag body verbatim.
type TagBody interface {
	Raw() []byte
}

// ScriptBody holds an AMF-encoded metadata payload, kept opaque.
type ScriptBody struct {
	Data []byte
}

func (b *ScriptBody) Raw() []byte {
	return b.Data
}

type AudioBody struct {
	SoundFormat SoundFormat // bits 7-4 of the leading byte
	SoundRate   uint8       // bits 3-2
	SoundSize   uint8       // bit 1
	SoundType   uint8       // bit 0
	Data        []byte      // remaining data_size-1 bytes
}

func (b *AudioBody) Raw() []byte {
	return b.Data
}

// Flags re-encodes the leading byte from the four sub-fields.
func (b *AudioBody) Flags() byte {
	return byte(b.SoundFormat)<<4 | b.SoundRate<<2 | b.SoundSize<<1 | b.SoundType
}

type VideoBody struct {
	FrameType FrameType // high nibble of the leading byte
	CodecID   CodecID   // low nibble
	Data      []byte    // remaining data_size-1 bytes
}

func (b *VideoBody) Raw() []byte {
	return b.Data
}

// Flags re-encodes the leading byte from the two sub-fields.
func (b *VideoBody) Flags() byte {
	return byte(b.FrameType)<<4 | byte(b.CodecID)
}

// RawBody carries the whole body of a tag with an unrecognized type code.
type RawBody struct {
	Data []byte
}

func (b *RawBody) Raw() []byte {
	return b.Data
}

// DecodeTagBody consumes exactly frame.DataSize bytes from the cursor and
// decodes the variant matching frame.TagType.
func DecodeTagBody(frame *TagFrame, cur *Cursor) (TagBody, error) {
	size := int(frame.DataSize)
	if cur.Remaining() < size {
		return nil, errors.Wrapf(ErrTruncatedBody, "%s tag declares %d bytes, %d remain",
			frame.TagType, frame.DataSize, cur.Remaining())
	}

	switch frame.TagType {
	case TagTypeAudio:
		return decodeAudioBody(frame, cur)
	case TagTypeVideo:
		return decodeVideoBody(frame, cur)
	case TagTypeScript:
		data, err := cur.ReadBytes(size)
		if err != nil {
			return nil, errors.Wrap(err, "read script body")
		}
		return &ScriptBody{Data: data}, nil
	default:
		data, err := cur.ReadBytes(size)
		if err != nil {
			return nil, errors.Wrap(err, "read raw body")
		}
		return &RawBody{Data: data}, nil
	}
}

func decodeAudioBody(frame *TagFrame, cur *Cursor) (*AudioBody, error) {
	if frame.DataSize == 0 {
		return nil, ErrEmptyAudioBody
	}

	flags, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read audio flags")
	}

	data, err := cur.ReadBytes(int(frame.DataSize) - 1)
	if err != nil {
		return nil, errors.Wrap(err, "read audio payload")
	}

	return &AudioBody{
		SoundFormat: SoundFormat(flags >> 4),
		SoundRate:   (flags >> 2) & 0x3,
		SoundSize:   (flags >> 1) & 0x1,
		SoundType:   flags & 0x1,
		Data:        data,
	}, nil
}

func decodeVideoBody(frame *TagFrame, cur *Cursor) (*VideoBody, error) {
	if frame.DataSize == 0 {
		return nil, ErrEmptyVideoBody
	}

	flags, err := cur.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "read video flags")
	}

	data, err := cur.ReadBytes(int(frame.DataSize) - 1)
	if err != nil {
		return nil, errors.Wrap(err, "read video payload")
	}

	return &VideoBody{
		FrameType: FrameType(flags >> 4),
		CodecID:   CodecID(flags & 0xf),
		Data:      data,
	}, nil
}
