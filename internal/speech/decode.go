package speech

import (
	"encoding/base64"
	"strings"
)

// FirstAudio returns audios[0] of the envelope, or a MalformedResponseError
// when the list is missing, empty or starts with an empty string.
func FirstAudio(env Envelope) (string, error) {
	if env.Audios == nil {
		return "", &MalformedResponseError{Reason: `missing "audios" field`}
	}
	if len(env.Audios) == 0 {
		return "", &MalformedResponseError{Reason: `empty "audios" list`}
	}
	if strings.TrimSpace(env.Audios[0]) == "" {
		return "", &MalformedResponseError{Reason: `empty audio at "audios[0]"`}
	}
	return env.Audios[0], nil
}

// DecodeAudio decodes a standard, padded base64 string into raw audio bytes.
func DecodeAudio(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return data, nil
}
