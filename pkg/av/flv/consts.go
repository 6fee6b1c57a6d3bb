package flv

import "fmt"

const (
	// HeaderSize is the fixed length of the FLV file header.
	HeaderSize = 9
	// TagHeaderSize is the fixed length of the frame preceding every tag body.
	TagHeaderSize = 11

	prevTagSizeSize = 4
)

// header flags byte
const (
	flagVideo = 0x01 // bit 0
	flagAudio = 0x04 // bit 2
)

// TagType keeps the raw code from the file so unrecognized tag types
// round-trip losslessly.
type TagType uint8

const (
	TagTypeAudio  TagType = 8
	TagTypeVideo  TagType = 9
	TagTypeScript TagType = 18
)

func (t TagType) String() string {
	switch t {
	case TagTypeAudio:
		return "Audio"
	case TagTypeVideo:
		return "Video"
	case TagTypeScript:
		return "Script"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

type FrameType uint8

const (
	FrameTypeKey          FrameType = 1
	FrameTypeInter        FrameType = 2
	FrameTypeDispInter    FrameType = 3 // disposable inter frame (H.263 only)
	FrameTypeGeneratedKey FrameType = 4
	FrameTypeCommand      FrameType = 5 // video info/command frame
)

func (ft FrameType) String() string {
	switch ft {
	case FrameTypeKey:
		return "KeyFrame"
	case FrameTypeInter:
		return "InterFrame"
	case FrameTypeDispInter:
		return "DisposableInterFrame"
	case FrameTypeGeneratedKey:
		return "GeneratedKeyFrame"
	case FrameTypeCommand:
		return "VideoInfoOrCommandFrame"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(ft))
	}
}

type CodecID uint8

const (
	CodecJPEG         CodecID = 1
	CodecH263         CodecID = 2
	CodecScreenVideo  CodecID = 3
	CodecVP6          CodecID = 4
	CodecVP6Alpha     CodecID = 5
	CodecScreenVideo2 CodecID = 6
	CodecAVC          CodecID = 7
)

func (c CodecID) String() string {
	switch c {
	case CodecJPEG:
		return "JPEG"
	case CodecH263:
		return "SorensonH263"
	case CodecScreenVideo:
		return "ScreenVideo"
	case CodecVP6:
		return "On2VP6"
	case CodecVP6Alpha:
		return "On2VP6WithAlpha"
	case CodecScreenVideo2:
		return "ScreenVideoVersion2"
	case CodecAVC:
		return "AVC"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// SoundFormat names cover the documented set; anything else stays numeric.
type SoundFormat uint8

const (
	SoundFormatPCM          SoundFormat = 0
	SoundFormatADPCM        SoundFormat = 1
	SoundFormatMP3          SoundFormat = 2
	SoundFormatPCMLE        SoundFormat = 3
	SoundFormatNellymoser16 SoundFormat = 4
	SoundFormatNellymoser8  SoundFormat = 5
	SoundFormatNellymoser   SoundFormat = 6
	SoundFormatG711A        SoundFormat = 7
	SoundFormatG711Mu       SoundFormat = 8
	SoundFormatAAC          SoundFormat = 10
	SoundFormatSpeex        SoundFormat = 11
	SoundFormatMP38kHz      SoundFormat = 14
	SoundFormatDevice       SoundFormat = 15
)

func (sf SoundFormat) String() string {
	switch sf {
	case SoundFormatPCM:
		return "LinearPCMPlatformEndian"
	case SoundFormatADPCM:
		return "ADPCM"
	case SoundFormatMP3:
		return "MP3"
	case SoundFormatPCMLE:
		return "LinearPCMLittleEndian"
	case SoundFormatNellymoser16:
		return "Nellymoser16kHzMono"
	case SoundFormatNellymoser8:
		return "Nellymoser8kHzMono"
	case SoundFormatNellymoser:
		return "Nellymoser"
	case SoundFormatG711A:
		return "G711ALaw"
	case SoundFormatG711Mu:
		return "G711MuLaw"
	case SoundFormatAAC:
		return "AAC"
	case SoundFormatSpeex:
		return "Speex"
	case SoundFormatMP38kHz:
		return "MP38kHz"
	case SoundFormatDevice:
		return "DeviceSpecific"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(sf))
	}
}
