package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func wavHeader() []byte {
	return append([]byte("RIFF\x24\x00\x00\x00WAVE"), []byte("fmt ")...)
}

func TestLoadRecording_MimeFromExtension(t *testing.T) {
	path := writeTempFile(t, "note.mp3", []byte("not really audio but present"))

	rec, err := LoadRecording(path)

	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", rec.MimeType)
	assert.NotEmpty(t, rec.Data)
}

func TestLoadRecording_SniffsWavWithoutExtension(t *testing.T) {
	path := writeTempFile(t, "note", wavHeader())

	rec, err := LoadRecording(path)

	require.NoError(t, err)
	assert.Equal(t, "audio/wav", rec.MimeType)
}

func TestLoadRecording_SniffsOgg(t *testing.T) {
	path := writeTempFile(t, "note", []byte("OggS\x00rest-of-stream"))

	rec, err := LoadRecording(path)

	require.NoError(t, err)
	assert.Equal(t, "audio/ogg", rec.MimeType)
}

func TestLoadRecording_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "note.wav", nil)

	_, err := LoadRecording(path)

	require.ErrorIs(t, err, ErrEmptyRecording)
}

func TestLoadRecording_UnknownFormat(t *testing.T) {
	path := writeTempFile(t, "note.xyz", []byte("plain text, no magic"))

	_, err := LoadRecording(path)

	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadRecording_MissingFile(t *testing.T) {
	_, err := LoadRecording(filepath.Join(t.TempDir(), "absent.wav"))

	require.Error(t, err)
}
