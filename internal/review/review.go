package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"valereview/internal/types"
)

const (
	ApprovedBody       = "Vale found no issues :+1:"
	RequestChangesBody = "Please take a look at these..."
)

// Convert flattens a Vale report into a review payload. Comments follow the
// report's file order, then remark order within each file. A nil commitID is
// kept as nil.
func Convert(report types.Report, commitID *string) types.ReviewPayload {
	comments := make([]types.Comment, 0, report.Len())
	for _, file := range report {
		for _, remark := range file.Remarks {
			comments = append(comments, types.Comment{
				OldPosition: 0,
				NewPosition: remark.Line,
				Path:        file.Path,
				Body:        remark.Message,
			})
		}
	}

	payload := types.ReviewPayload{
		CommitID: commitID,
		Event:    types.EventApproved,
		Comments: comments,
		Body:     ApprovedBody,
	}
	if len(comments) > 0 {
		payload.Event = types.EventRequestChanges
		payload.Body = RequestChangesBody
	}
	return payload
}

// Write encodes payload as a single JSON line. Nothing is written to w if
// encoding fails.
func Write(w io.Writer, payload types.ReviewPayload) error {
	if payload.Comments == nil {
		payload.Comments = []types.Comment{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode review payload: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write review payload: %w", err)
	}
	return nil
}

// Summary is what the verbose diagnostic line reports about a payload.
type Summary struct {
	Files    int
	Comments int
	Event    types.Event
}

func Summarize(payload types.ReviewPayload) Summary {
	files := make(map[string]bool)
	for _, c := range payload.Comments {
		files[c.Path] = true
	}
	return Summary{
		Files:    len(files),
		Comments: len(payload.Comments),
		Event:    payload.Event,
	}
}
