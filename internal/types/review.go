package types

type Event string

const (
	EventApproved       Event = "APPROVED"
	EventRequestChanges Event = "REQUEST_CHANGES"
)

// Comment is one inline review annotation. OldPosition is always 0 since
// remarks point at lines of the new file.
type Comment struct {
	OldPosition int    `json:"old_position"`
	NewPosition int    `json:"new_position"`
	Path        string `json:"path"`
	Body        string `json:"body"`
}

// ReviewPayload is the document submitted to the review API. A nil CommitID
// serializes as null.
type ReviewPayload struct {
	CommitID *string   `json:"commit_id"`
	Event    Event     `json:"event"`
	Comments []Comment `json:"comments"`
	Body     string    `json:"body"`
}
