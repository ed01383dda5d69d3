package audiofile

import "errors"

var (
	errInvalidWAV    = errors.New("not a valid WAV file")
	errUnknownLength = errors.New("unknown audio length")
)
