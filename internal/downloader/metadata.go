package downloader

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ResponseMetadata is what gets reported about a response before its body
// is read.
type ResponseMetadata struct {
	StatusCode int
	// Status is the full status line text, e.g. "200 OK".
	Status      string
	Length      uint64
	LengthKnown bool
	ContentType string
}

// MetadataFromHeader reads Content-Length and Content-Type. A missing or
// unparsable Content-Length leaves the length unknown.
func MetadataFromHeader(code int, status string, h http.Header) ResponseMetadata {
	meta := ResponseMetadata{
		StatusCode:  code,
		Status:      status,
		ContentType: h.Get("Content-Type"),
	}
	if status == "" {
		meta.Status = strconv.Itoa(code) + " " + http.StatusText(code)
	}
	if v := strings.TrimSpace(h.Get("Content-Length")); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			meta.Length = n
			meta.LengthKnown = true
		}
	}
	return meta
}

func metadataFromResponse(resp *http.Response) ResponseMetadata {
	return MetadataFromHeader(resp.StatusCode, resp.Status, resp.Header)
}

// Success reports a 2xx status.
func (m ResponseMetadata) Success() bool {
	return m.StatusCode >= 200 && m.StatusCode < 300
}

// Total is the length as a progress total, -1 when unknown.
func (m ResponseMetadata) Total() int64 {
	if !m.LengthKnown || m.Length > math.MaxInt64 {
		return -1
	}
	return int64(m.Length)
}
