package speech

import "fmt"

// UpstreamRequestError reports a non-2xx answer from the provider.
type UpstreamRequestError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamRequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a 2xx body without a usable audios[0].
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// DecodeError reports that audios[0] is not valid base64.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode audio payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a failure while persisting audio to the filesystem.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
