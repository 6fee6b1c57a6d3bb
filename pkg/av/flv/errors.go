package flv

import "github.com/pkg/errors"

var (
	// ErrBadSignature means the buffer does not start with "FLV".
	ErrBadSignature = errors.New("missing FLV signature")

	// ErrTruncated means fewer bytes remain than a fixed-size field requires.
	ErrTruncated = errors.New("unexpected end of buffer")

	// ErrTruncatedBody means fewer bytes remain than the tag's declared data size.
	ErrTruncatedBody = errors.New("tag body shorter than declared data size")

	ErrEmptyAudioBody = errors.New("audio tag with zero data size")
	ErrEmptyVideoBody = errors.New("video tag with zero data size")
)
