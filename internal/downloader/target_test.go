package downloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestTargetFileName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://example.test/data.bin", "data.bin"},
		{"https://example.test/a/b/c/archive.tar.gz", "archive.tar.gz"},
		{"https://example.test/", DefaultFileName},
		{"https://example.test", DefaultFileName},
		{"https://example.test/dir/", DefaultFileName},
		{"https://example.test/file.txt?token=a/b", "b"},
		{"https://example.test/file.txt#part", "file.txt#part"},
		{"https://example.test/x.bin?v=1", "x.bin?v=1"},
		{"https://example.test/dl?path=/a/b.bin", "b.bin"},
		{"https://example.test/my%20file.bin", "my%20file.bin"},
		{"https://example.test/dir%2Ffile.bin", "dir%2Ffile.bin"},
		{"  https://example.test/padded.bin  ", "padded.bin"},
		{"https://example.test?path=/a/b.bin", DefaultFileName},
		{"http://example.test:8080/x", "x"},
		{"https://example.test/a/..", DefaultFileName},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			target, err := ParseTarget(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.FileName())
		})
	}
}

func TestParseTargetRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a url",
		"example.test/data.bin",
		"/relative/path",
		"http://",
		"ftp://example.test/file",
		"://missing-scheme",
		"http://[::1",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTarget(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrURLParse), "got %v", err)
		})
	}
}
