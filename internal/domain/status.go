package domain

// Status is the review state carried by submissions, contact requests and deletion requests.
type Status string

const (
	StatusPending   Status = "pending"   // Initial state of every status-bearing row
	StatusApproved  Status = "approved"  // Terminal: accepted by an admin
	StatusRejected  Status = "rejected"  // Terminal: declined by an admin
	StatusCompleted Status = "completed" // Terminal: deletion request fully actioned
	StatusAccepted  Status = "accepted"  // Contact request accepted by the profile owner
)

// Reviewable is implemented by rows that move through the approval workflow
type Reviewable interface {
	ReviewStatus() Status
}

// Terminal reports whether no further review transition is expected
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCompleted
}

// CanTransition reports whether an admin action may move a row from s to next.
// Pending rows may move to approved or rejected. Writing the current terminal
// value again is allowed and leaves the row unchanged.
func (s Status) CanTransition(next Status) bool {
	switch {
	case s == next:
		return s.Terminal()
	case s.Terminal():
		return false
	default:
		return next == StatusApproved || next == StatusRejected
	}
}
