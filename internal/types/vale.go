package types

// Remark is a single Vale finding. Vale emits more fields per alert
// (Check, Severity, Span, ...); only the two carried into the review are kept.
type Remark struct {
	Line    int
	Message string
}

// FileRemarks holds the remarks Vale reported for one file, in report order.
type FileRemarks struct {
	Path    string
	Remarks []Remark
}

// Report is the parsed Vale JSON output. Files keep the order they had in
// the input document.
type Report []FileRemarks

// Len returns the total number of remarks across all files.
func (r Report) Len() int {
	n := 0
	for _, f := range r {
		n += len(f.Remarks)
	}
	return n
}
