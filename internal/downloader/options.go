package downloader

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/accelara/rget/internal/progress"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusReporter interface for reporting download status
type StatusReporter interface {
	Report(status Status)
}

// Options contains all download options
type Options struct {
	// Dir is the destination directory. Empty means the working directory.
	Dir   string
	Proxy string
	Quiet bool

	StatusReporter StatusReporter

	// Client overrides the HTTP client built from Proxy.
	Client Doer
	// ProgressWriter is where the bar or spinner is drawn (default os.Stderr).
	ProgressWriter io.Writer
	// NewIndicator overrides progress.New.
	NewIndicator func(cfg progress.Config) progress.Indicator
	Logger       *slog.Logger
}
