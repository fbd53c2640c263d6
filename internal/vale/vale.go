package vale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"valereview/internal/types"
)

// ErrMalformedInput is matched by every error ParseReport returns for input
// that is not a Vale JSON report.
var ErrMalformedInput = errors.New("malformed vale report")

// MalformedInputError describes where the report stopped making sense.
// Remark is -1 when the failure is not tied to a single remark.
type MalformedInputError struct {
	File   string
	Remark int
	Err    error

	inFile bool
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.inFile && e.Remark >= 0:
		return fmt.Sprintf("%v: file %q, remark %d: %v", ErrMalformedInput, e.File, e.Remark, e.Err)
	case e.inFile:
		return fmt.Sprintf("%v: file %q: %v", ErrMalformedInput, e.File, e.Err)
	default:
		return fmt.Sprintf("%v: %v", ErrMalformedInput, e.Err)
	}
}

func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

func malformed(err error) error {
	return &MalformedInputError{Remark: -1, Err: err}
}

func malformedFile(file string, remark int, err error) error {
	return &MalformedInputError{File: file, Remark: remark, Err: err, inFile: true}
}

// ParseReport reads a whole Vale JSON report (vale --output=JSON) from r.
// Files are returned in document order. A file name repeated in the document
// keeps its first position and its last list of remarks.
func ParseReport(r io.Reader) (types.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(fmt.Errorf("failed to read report: %w", err))
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, malformed(errors.New("empty input"))
	}
	if err != nil {
		return nil, malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, malformed(fmt.Errorf("expected a JSON object at top level, got %s", describe(tok)))
	}

	report := types.Report{}
	seen := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		file, ok := tok.(string)
		if !ok {
			return nil, malformed(fmt.Errorf("expected a file name, got %s", describe(tok)))
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformedFile(file, -1, err)
		}

		remarks, err := parseRemarks(file, raw)
		if err != nil {
			return nil, err
		}

		if i, ok := seen[file]; ok {
			report[i].Remarks = remarks
			continue
		}
		seen[file] = len(report)
		report = append(report, types.FileRemarks{Path: file, Remarks: remarks})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, malformed(fmt.Errorf("unexpected data after report: %w", err))
		}
		return nil, malformed(fmt.Errorf("unexpected data after report: %s", describe(tok)))
	}

	return report, nil
}

func parseRemarks(file string, raw json.RawMessage) ([]types.Remark, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, malformedFile(file, -1, fmt.Errorf("expected a list of remarks, got %s", kindOf(raw)))
	}

	var alerts []json.RawMessage
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, malformedFile(file, -1, err)
	}

	remarks := make([]types.Remark, 0, len(alerts))
	for i, alert := range alerts {
		remark, err := parseRemark(alert)
		if err != nil {
			return nil, malformedFile(file, i, err)
		}
		remarks = append(remarks, remark)
	}
	return remarks, nil
}

// parseRemark pulls Line and Message out of one alert. Keys are matched
// exactly; encoding/json's case-insensitive struct matching would accept
// "line" or "message".
func parseRemark(raw json.RawMessage) (types.Remark, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return types.Remark{}, fmt.Errorf("expected an object, got %s", kindOf(raw))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.Remark{}, err
	}

	lineRaw, ok := fields["Line"]
	if !ok {
		return types.Remark{}, errors.New(`missing "Line"`)
	}
	var line *int
	if err := json.Unmarshal(lineRaw, &line); err != nil || line == nil {
		return types.Remark{}, fmt.Errorf(`"Line" must be an integer, got %s`, kindOf(lineRaw))
	}

	msgRaw, ok := fields["Message"]
	if !ok {
		return types.Remark{}, errors.New(`missing "Message"`)
	}
	var msg *string
	if err := json.Unmarshal(msgRaw, &msg); err != nil || msg == nil {
		return types.Remark{}, fmt.Errorf(`"Message" must be a string, got %s`, kindOf(msgRaw))
	}

	return types.Remark{Line: *line, Message: *msg}, nil
}

func describe(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "an array"
		}
		return fmt.Sprintf("%q", t.String())
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", tok)
}

func kindOf(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	}
	return "a number"
}
