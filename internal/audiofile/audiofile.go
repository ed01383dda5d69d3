// Package audiofile persists synthesized audio and inspects the result.
package audiofile

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/valpere/vaani/internal/speech"
)

// FileStore writes audio to local paths.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (fs *FileStore) Write(path string, data []byte) error {
	return Write(path, data)
}

// Write replaces the file at path with data. Parent directories are not
// created. The handle is closed on every path; a close failure after a
// successful write is reported.
func Write(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &speech.IOError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &speech.IOError{Path: path, Op: "close", Err: cerr}
		}
	}()

	if _, werr := f.Write(data); werr != nil {
		return &speech.IOError{Path: path, Op: "write", Err: werr}
	}
	return nil
}

// Info describes written audio. Duration is zero when it could not be determined.
type Info struct {
	Bytes    int
	Duration time.Duration
}

// Inspect reports the size of data and, for wav and mp3, its playback length.
func Inspect(data []byte, codec string) Info {
	info := Info{Bytes: len(data)}

	var (
		d   time.Duration
		err error
	)
	switch strings.ToLower(codec) {
	case "wav":
		d, err = wavDuration(data)
	case "mp3":
		d, err = mp3Duration(data)
	default:
		return info
	}
	if err == nil {
		info.Duration = d
	}
	return info
}

func wavDuration(data []byte) (time.Duration, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return 0, errInvalidWAV
	}
	return dec.Duration()
}

// go-mp3 always decodes to 16-bit stereo PCM.
const mp3BytesPerFrame = 4

func mp3Duration(data []byte) (time.Duration, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	if dec.SampleRate() <= 0 || dec.Length() <= 0 {
		return 0, errUnknownLength
	}
	frames := dec.Length() / mp3BytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(dec.SampleRate()), nil
}
