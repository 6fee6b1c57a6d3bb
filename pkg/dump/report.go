package dump

import (
	"fmt"
	"io"

	"flvdump/pkg/av/flv"
)

const banner = "====================================="

// reporter renders the parsed record sequence as the classic flv dump layout:
// a header block, then one banner-separated block per structural element in
// stream order.
type reporter struct {
	w       io.Writer
	preview int // max payload bytes rendered per tag
}

func newReporter(w io.Writer, preview int) *reporter {
	return &reporter{w: w, preview: preview}
}

func (r *reporter) write(path string, fileSize int64, dump *flv.Dump) error {
	if err := r.writeFileHeader(path, fileSize, dump.Header); err != nil {
		return err
	}

	for _, record := range dump.Records {
		var err error
		switch rec := record.(type) {
		case *flv.SizeMarkerRecord:
			err = r.writeSizeMarker(rec)
		case *flv.TagRecord:
			err = r.writeTag(rec)
		}
		if err != nil {
			return err
		}
	}

	if dump.Err != nil {
		if err := r.printf("%s\nError: %v\n", banner, dump.Err); err != nil {
			return err
		}
	}

	return r.printf("%s\n", banner)
}

func (r *reporter) writeFileHeader(path string, fileSize int64, h *flv.FileHeader) error {
	if err := r.printf("%s\nFile: %s\nFileSize: %d\nVersion: %d\nHasAudio: %t\nHasVideo: %t\n",
		banner, path, fileSize, h.Version, h.HasAudio, h.HasVideo); err != nil {
		return err
	}

	if h.StandardDataOffset() {
		return r.printf("DataOffset: %d\n", h.DataOffset)
	}

	return r.printf("DataOffset: %d (non-standard, expected %d)\n", h.DataOffset, flv.HeaderSize)
}

func (r *reporter) writeSizeMarker(m *flv.SizeMarkerRecord) error {
	if m.Match() {
		return r.printf("%s\nPreviousTagSize%d: %d\n", banner, m.Index, m.Declared)
	}

	return r.printf("%s\nPreviousTagSize%d: %d (mismatch, expected %d)\n",
		banner, m.Index, m.Declared, m.Expected)
}

func (r *reporter) writeTag(t *flv.TagRecord) error {
	if err := r.printf("%s\nTagIndex: %d\nTagType: %s\nDataSize: %d\nTimestamp: %d\nStreamID: %d\n",
		banner, t.Index, t.Frame.TagType, t.Frame.DataSize, t.Frame.Timestamp, t.Frame.StreamID); err != nil {
		return err
	}

	switch body := t.Body.(type) {
	case *flv.AudioBody:
		return r.printf("SoundFormat: %s\nSoundRate: %d\nSoundSize: %d\nSoundType: %d\nData: %s\n",
			body.SoundFormat, body.SoundRate, body.SoundSize, body.SoundType, r.payload(body.Data))
	case *flv.VideoBody:
		return r.printf("FrameType: %s\nCodecId: %s\nData: %s\n",
			body.FrameType, body.CodecID, r.payload(body.Data))
	case *flv.ScriptBody:
		return r.printf("RawScriptData: %s\n", r.payload(body.Data))
	default:
		return r.printf("Data: %s\n", r.payload(t.Body.Raw()))
	}
}

func (r *reporter) payload(data []byte) string {
	if len(data) <= r.preview {
		return fmt.Sprintf("% x", data)
	}

	return fmt.Sprintf("% x ... (%d bytes total)", data[:r.preview], len(data))
}

func (r *reporter) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.w, format, args...)
	return err
}
