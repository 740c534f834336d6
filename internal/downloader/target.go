package downloader

import (
	"net/url"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultFileName is used when the URL path has no final segment.
const DefaultFileName = "downloaded_file"

// Target is the URL a download was asked for.
type Target struct {
	raw string
	url *url.URL
}

// ParseTarget accepts only absolute http and https URLs.
func ParseTarget(raw string) (*Target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrURLParse, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Errorf("%w: %q is not an absolute URL", ErrURLParse, raw)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, errors.Errorf("%w: unsupported scheme %q", ErrURLParse, u.Scheme)
	}
	return &Target{raw: strings.TrimSpace(raw), url: u}, nil
}

func (t *Target) String() string { return t.url.String() }

// FileName is the text of the URL, as given, after its last slash. Nothing
// is decoded, and a query or fragment after that slash stays in the name.
// A URL without a path gets DefaultFileName.
func (t *Target) FileName() string {
	if t.url.Path == "" {
		return DefaultFileName
	}
	name := t.raw[strings.LastIndex(t.raw, "/")+1:]
	switch name {
	case "", ".", "..":
		return DefaultFileName
	}
	return name
}
