// Package audio loads recorded voice notes from disk. Capture itself is out
// of the client's hands (any recorder app will do); the TUI takes a file
// path, this package validates it and sniffs the mime type the transcription
// API needs.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyRecording    = errors.New("recording file is empty")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrRecordingTooLarge = errors.New("recording file is too large")
)

// maxRecordingSize bounds what gets base64-encoded into a single
// transcription request.
const maxRecordingSize = 20 << 20

// mimeByExtension covers the formats the transcription endpoint accepts.
var mimeByExtension = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

// Recording is a voice note read from disk, ready for transcription.
type Recording struct {
	Data     []byte
	MimeType string
}

// LoadRecording reads the audio file at path and determines its mime type
// from the extension, falling back to content sniffing for extensionless
// files.
func LoadRecording(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("read recording: %w", err)
	}
	if len(data) == 0 {
		return Recording{}, ErrEmptyRecording
	}
	if len(data) > maxRecordingSize {
		return Recording{}, fmt.Errorf("%w: %d bytes", ErrRecordingTooLarge, len(data))
	}

	mimeType := mimeByExtension[strings.ToLower(filepath.Ext(path))]
	if mimeType == "" {
		mimeType = sniffMimeType(data)
	}
	if mimeType == "" {
		return Recording{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return Recording{Data: data, MimeType: mimeType}, nil
}

// sniffMimeType recognises the magic numbers of the supported containers.
// Returns "" for anything else.
func sniffMimeType(data []byte) string {
	switch {
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return "audio/wav"
	case len(data) >= 3 && string(data[:3]) == "ID3":
		return "audio/mpeg"
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return "audio/mpeg"
	case len(data) >= 4 && string(data[:4]) == "OggS":
		return "audio/ogg"
	case len(data) >= 4 && string(data[:4]) == "fLaC":
		return "audio/flac"
	case len(data) >= 12 && string(data[4:8]) == "ftyp":
		return "audio/mp4"
	case len(data) >= 4 && data[0] == 0x1A && data[1] == 0x45 && data[2] == 0xDF && data[3] == 0xA3:
		return "audio/webm"
	default:
		return ""
	}
}
