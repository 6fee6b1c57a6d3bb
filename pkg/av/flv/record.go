package flv

// Record is one structural element of the file body, either a *TagRecord or
// a *SizeMarkerRecord, in the exact order encountered.
type Record interface {
	record()
}

// TagRecord is one fully parsed tag. Index is 1-based in stream order.
type TagRecord struct {
	Index uint32
	Frame *TagFrame
	Body  TagBody
}

func (*TagRecord) record() {}

// SizeMarkerRecord is one 4-byte PreviousTagSize field. Index 0 is the marker
// preceding the first tag; otherwise Index equals the preceding tag's index.
type SizeMarkerRecord struct {
	Index    uint32
	Declared uint32 // value read from the file
	Expected uint32 // 11 + data size of the tag just consumed
}

func (*SizeMarkerRecord) record() {}

// Match reports whether the file's declared size agrees with the computed one.
// A mismatch is a structural anomaly to report, not an error.
func (m *SizeMarkerRecord) Match() bool {
	return m.Declared == m.Expected
}

// Dump is the result of demuxing one buffer: the file header, the ordered
// record sequence, and the terminal error that stopped the loop early, if any.
// Records parsed before the error are always kept.
type Dump struct {
	Header  *FileHeader
	Records []Record
	Err     error
}

// Tags returns only the tag records, in stream order.
func (d *Dump) Tags() []*TagRecord {
	var tags []*TagRecord
	for _, r := range d.Records {
		if t, ok := r.(*TagRecord); ok {
			tags = append(tags, t)
		}
	}

	return tags
}
