package dump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flvdump/pkg/av/flv"
)

func minimalFile() []byte {
	return []byte{
		'F', 'L', 'V', 0x01, 0x05, 0x00, 0x00, 0x00, 0x09,
		0x00, 0x00, 0x00, 0x00, // PreviousTagSize0
		18, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // script tag frame
		0xaa, 0xbb, // body
		0x00, 0x00, 0x00, 0x0d, // PreviousTagSize1 = 13
	}
}

func TestReportGolden(t *testing.T) {
	data := minimalFile()
	dump, err := flv.NewDemuxer().Demux(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	rep := newReporter(&buf, 16)
	require.NoError(t, rep.write("test.flv", int64(len(data)), dump))

	want := "=====================================\n" +
		"File: test.flv\n" +
		"FileSize: 30\n" +
		"Version: 1\n" +
		"HasAudio: true\n" +
		"HasVideo: true\n" +
		"DataOffset: 9\n" +
		"=====================================\n" +
		"PreviousTagSize0: 0\n" +
		"=====================================\n" +
		"TagIndex: 1\n" +
		"TagType: Script\n" +
		"DataSize: 2\n" +
		"Timestamp: 0\n" +
		"StreamID: 0\n" +
		"RawScriptData: aa bb\n" +
		"=====================================\n" +
		"PreviousTagSize1: 13\n" +
		"=====================================\n"
	assert.Equal(t, want, buf.String())
}

func TestReportSizeMarkerMismatch(t *testing.T) {
	data := minimalFile()
	data[len(data)-1] = 99 // PreviousTagSize1 declares 99 instead of 13

	dump, err := flv.NewDemuxer().Demux(data)
	require.NoError(t, err)
	require.NoError(t, dump.Err)

	var buf bytes.Buffer
	rep := newReporter(&buf, 16)
	require.NoError(t, rep.write("test.flv", int64(len(data)), dump))

	assert.Contains(t, buf.String(), "PreviousTagSize1: 99 (mismatch, expected 13)")
}

func TestReportTerminalError(t *testing.T) {
	data := minimalFile()
	data = data[:len(data)-5] // cut into the script body

	dump, err := flv.NewDemuxer().Demux(data)
	require.NoError(t, err)
	require.Error(t, dump.Err)

	var buf bytes.Buffer
	rep := newReporter(&buf, 16)
	require.NoError(t, rep.write("test.flv", int64(len(data)), dump))

	out := buf.String()
	assert.Contains(t, out, "PreviousTagSize0: 0")
	assert.NotContains(t, out, "TagIndex")
	assert.Contains(t, out, "Error: ")
}

func TestReportNonStandardDataOffset(t *testing.T) {
	data := minimalFile()
	data[8] = 0x0d

	dump, err := flv.NewDemuxer().Demux(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	rep := newReporter(&buf, 16)
	require.NoError(t, rep.write("test.flv", int64(len(data)), dump))

	assert.Contains(t, buf.String(), "DataOffset: 13 (non-standard, expected 9)")
}

func TestReportPayloadPreview(t *testing.T) {
	rep := newReporter(&bytes.Buffer{}, 2)

	assert.Equal(t, "aa bb", rep.payload([]byte{0xaa, 0xbb}))
	assert.Equal(t, "aa bb ... (3 bytes total)", rep.payload([]byte{0xaa, 0xbb, 0xcc}))
}
