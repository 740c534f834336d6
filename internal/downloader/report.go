package downloader

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/accelara/rget/internal/utils"
)

// Stage says which step of the pipeline a Status comes from.
type Stage string

const (
	StageResponse  Stage = "response"
	StageSkipped   Stage = "skipped"
	StageMetadata  Stage = "metadata"
	StageSaving    Stage = "saving"
	StageCompleted Stage = "completed"
)

// Status is one update handed to a StatusReporter.
type Status struct {
	Stage    Stage
	Response ResponseMetadata
	FileName string
	// Path is set once the file is written.
	Path       string
	Downloaded int64
}

// ConsoleReporter prints wget-style status lines. With Color set, values
// are green and unknown or failed ones red.
type ConsoleReporter struct {
	W     io.Writer
	Color bool
}

func (r *ConsoleReporter) Report(s Status) {
	good, bad := r.paint(color.FgGreen), r.paint(color.FgRed)

	switch s.Stage {
	case StageResponse:
		fmt.Fprintf(r.W, "HTTP request sent... %s\n", good(s.Response.Status))
	case StageSkipped:
		fmt.Fprintf(r.W, "Nothing saved: server answered %s\n", bad(s.Response.Status))
	case StageMetadata:
		if s.Response.LengthKnown {
			fmt.Fprintf(r.W, "Length: %s (%s)\n", good(s.Response.Length), bad(utils.HumanLength(s.Response.Length)))
		} else {
			fmt.Fprintf(r.W, "Length: %s\n", bad("unknown"))
		}
		if s.Response.ContentType != "" {
			fmt.Fprintf(r.W, "Type: %s\n", good(s.Response.ContentType))
		}
	case StageSaving:
		fmt.Fprintf(r.W, "Saving to: %s\n", good(s.FileName))
	case StageCompleted:
		fmt.Fprintf(r.W, "Saved %s [%s]\n", good(s.Path), utils.HumanBytes(s.Downloaded))
	}
}

func (r *ConsoleReporter) paint(attr color.Attribute) func(a ...interface{}) string {
	if !r.Color {
		return fmt.Sprint
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint
}

// JSONReporter writes each status as one JSON object per line.
type JSONReporter struct {
	W   io.Writer
	Now func() time.Time
}

func (r *JSONReporter) Report(s Status) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	output := map[string]interface{}{
		"stage":     s.Stage,
		"timestamp": now().Unix(),
	}
	switch s.Stage {
	case StageResponse, StageSkipped:
		output["status_code"] = s.Response.StatusCode
		output["status"] = s.Response.Status
	case StageMetadata:
		if s.Response.LengthKnown {
			output["length"] = s.Response.Length
		} else {
			output["length"] = nil
		}
		if s.Response.ContentType != "" {
			output["content_type"] = s.Response.ContentType
		}
	case StageSaving:
		output["file"] = s.FileName
	case StageCompleted:
		output["file"] = s.FileName
		output["path"] = s.Path
		output["downloaded"] = s.Downloaded
	}

	data, _ := json.Marshal(output)
	fmt.Fprintln(r.W, string(data))
}
