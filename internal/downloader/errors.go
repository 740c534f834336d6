package downloader

import (
	"gitlab.com/tozd/go/errors"
)

// Every error returned by Download matches exactly one of these with errors.Is.
var (
	// ErrURLParse means the argument is not an absolute http(s) URL.
	// No request is sent.
	ErrURLParse = errors.Base("invalid URL")
	// ErrRequest means the request could not be sent or no response
	// headers were received.
	ErrRequest = errors.Base("request failed")
	// ErrTransport means the body stream broke after the headers arrived.
	ErrTransport = errors.Base("transfer interrupted")
	// ErrIO means the output file could not be created or fully written.
	ErrIO = errors.Base("cannot write output file")
)
