package downloader

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFromHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     http.Header
		wantLength uint64
		wantKnown  bool
		wantType   string
		wantTotal  int64
	}{
		{
			name:       "length and type",
			header:     http.Header{"Content-Length": {"4"}, "Content-Type": {"application/octet-stream"}},
			wantLength: 4,
			wantKnown:  true,
			wantType:   "application/octet-stream",
			wantTotal:  4,
		},
		{
			name:      "no headers",
			header:    http.Header{},
			wantTotal: -1,
		},
		{
			name:      "unparsable length",
			header:    http.Header{"Content-Length": {"abc"}},
			wantTotal: -1,
		},
		{
			name:      "negative length",
			header:    http.Header{"Content-Length": {"-5"}},
			wantTotal: -1,
		},
		{
			name:      "zero length",
			header:    http.Header{"Content-Length": {"0"}},
			wantKnown: true,
			wantTotal: 0,
		},
		{
			name:       "length beyond int64",
			header:     http.Header{"Content-Length": {"18446744073709551615"}},
			wantLength: 18446744073709551615,
			wantKnown:  true,
			wantTotal:  -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := MetadataFromHeader(http.StatusOK, "200 OK", tt.header)
			assert.Equal(t, tt.wantLength, meta.Length)
			assert.Equal(t, tt.wantKnown, meta.LengthKnown)
			assert.Equal(t, tt.wantType, meta.ContentType)
			assert.Equal(t, tt.wantTotal, meta.Total())
		})
	}
}

func TestMetadataSuccess(t *testing.T) {
	for code, want := range map[int]bool{
		http.StatusOK:                  true,
		http.StatusNoContent:           true,
		http.StatusMultipleChoices:     false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
		199:                            false,
	} {
		meta := MetadataFromHeader(code, "", http.Header{})
		assert.Equal(t, want, meta.Success(), "status %d", code)
	}
}

func TestMetadataStatusFallback(t *testing.T) {
	meta := MetadataFromHeader(http.StatusNotFound, "", nil)
	assert.Equal(t, "404 Not Found", meta.Status)
}
