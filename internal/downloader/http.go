package downloader

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/accelara/rget/internal/progress"
)

const (
	// readSize is the size of a single body read.
	readSize = 32 * 1024
	// maxPrealloc caps how much of an announced Content-Length is reserved
	// up front.
	maxPrealloc = 64 * 1024 * 1024
)

// HTTPDownloader fetches one URL with a single GET and saves the body.
type HTTPDownloader struct {
	sourceURL      string
	dir            string
	quiet          bool
	reporter       StatusReporter
	progressWriter io.Writer
	newIndicator   func(cfg progress.Config) progress.Indicator
	logger         *slog.Logger

	client Doer
}

func NewHTTPDownloader(sourceURL string, opts Options) *HTTPDownloader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := opts.Client
	if client == nil {
		client = newClient(opts.Proxy, logger)
	}

	newIndicator := opts.NewIndicator
	if newIndicator == nil {
		newIndicator = progress.New
	}

	return &HTTPDownloader{
		sourceURL:      sourceURL,
		dir:            opts.Dir,
		quiet:          opts.Quiet,
		reporter:       opts.StatusReporter,
		progressWriter: opts.ProgressWriter,
		newIndicator:   newIndicator,
		logger:         logger,
		client:         client,
	}
}

// newClient has no overall timeout; a stalled transfer fails only when the
// transport gives up.
func newClient(proxy string, logger *slog.Logger) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		} else {
			logger.Warn("ignoring invalid proxy", "proxy", proxy, "error", err)
		}
	}
	return &http.Client{Transport: transport}
}

// Download runs the whole pipeline. A non-2xx response is not an error:
// it is reported and nothing is written.
func (d *HTTPDownloader) Download(ctx context.Context) error {
	target, err := ParseTarget(d.sourceURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return errors.Errorf("%w: %w", ErrRequest, err)
	}

	d.logger.Debug("sending request", "url", target.String())
	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	meta := metadataFromResponse(resp)
	d.logger.Debug("response received", "status", meta.Status, "length", meta.Total(), "type", meta.ContentType)
	d.report(Status{Stage: StageResponse, Response: meta})

	if !meta.Success() {
		d.report(Status{Stage: StageSkipped, Response: meta})
		return nil
	}

	d.report(Status{Stage: StageMetadata, Response: meta})

	fileName := target.FileName()
	d.report(Status{Stage: StageSaving, Response: meta, FileName: fileName})

	body, err := d.accumulate(resp.Body, fileName, meta.Total())
	if err != nil {
		return err
	}
	d.logger.Debug("body received", "bytes", len(body))

	outPath := filepath.Join(d.dir, fileName)
	if err := SaveFile(outPath, body); err != nil {
		return err
	}
	d.logger.Debug("file written", "path", outPath, "bytes", len(body))

	d.report(Status{
		Stage:      StageCompleted,
		Response:   meta,
		FileName:   fileName,
		Path:       outPath,
		Downloaded: int64(len(body)),
	})
	return nil
}

// accumulate reads body to the end, advancing the indicator by every read.
// On a read error the partial body is dropped.
func (d *HTTPDownloader) accumulate(body io.Reader, name string, total int64) ([]byte, error) {
	indicator := d.newIndicator(progress.Config{
		Writer: d.progressWriter,
		Prefix: name,
		Total:  total,
		Quiet:  d.quiet,
	})

	var buf bytes.Buffer
	if total > 0 && total <= maxPrealloc {
		buf.Grow(int(total))
	}

	chunk := make([]byte, readSize)
	for {
		n, err := body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			indicator.Advance(int64(n))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			indicator.Finish()
			d.logger.Debug("body read failed", "received", buf.Len(), "error", err)
			return nil, errors.Errorf("%w: %w", ErrTransport, err)
		}
	}

	indicator.Finish()
	return buf.Bytes(), nil
}

func (d *HTTPDownloader) report(s Status) {
	if d.reporter != nil {
		d.reporter.Report(s)
	}
}
