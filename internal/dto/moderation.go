package dto

// ReviewAction names an admin moderation decision.
type ReviewAction string

const (
	ActionApprove        ReviewAction = "approve"
	ActionReject         ReviewAction = "reject"
	ActionRequestChanges ReviewAction = "request-changes"
)

// ReviewEventRequest captures the admin decision together with the side-data
// required by the reject and request-changes transitions.
type ReviewEventRequest struct {
	Action          ReviewAction `json:"action"`
	RejectionReason string       `json:"rejectionReason"`
	AdminNotes      string       `json:"adminNotes"`
}
