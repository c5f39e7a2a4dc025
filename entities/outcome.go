package entities

// Outcome is the non-error result of a write. Duplicates and refused deletes
// are expected conditions and travel as outcomes, not errors.
type Outcome string

const (
	Created       Outcome = "created"
	Updated       Outcome = "updated"
	Deleted       Outcome = "deleted"
	AlreadyExists Outcome = "already_exists"
	HasDependents Outcome = "has_dependents"
)

type Result struct {
	ID      int64   `json:"id,omitempty"`
	Outcome Outcome `json:"outcome"`
}

// OK reports whether the write actually happened.
func (r Result) OK() bool {
	switch r.Outcome {
	case Created, Updated, Deleted:
		return true
	}
	return false
}
