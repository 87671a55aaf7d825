package leave

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a leave request over a closed date interval. Only approved
// requests affect hour computation.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  string // YYYY-MM-DD, inclusive
	EndDate    string // YYYY-MM-DD, inclusive
	Status     RequestStatus
}
