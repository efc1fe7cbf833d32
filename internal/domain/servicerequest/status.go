package servicerequest

// ===============================
// Service Request Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// InitialStatus is the only status this system ever writes. Moving a request
// to in-progress or completed is an administrative action outside the portal.
func InitialStatus() Status {
	return StatusPending
}
