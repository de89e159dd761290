package models

import "time"

// ChangeType enumerates which event field a change request targets.
type ChangeType string

const (
	ChangeTitle           ChangeType = "title"
	ChangeDescription     ChangeType = "description"
	ChangeDate            ChangeType = "date"
	ChangeTime            ChangeType = "time"
	ChangeLocation        ChangeType = "location"
	ChangeCost            ChangeType = "cost"
	ChangeCapacity        ChangeType = "capacity"
	ChangeAudience        ChangeType = "audience"
	ChangeRegistrationURL ChangeType = "registrationUrl"
	ChangeOther           ChangeType = "other"
)

// Valid reports whether the change type is one of the known targets.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeTitle, ChangeDescription, ChangeDate, ChangeTime, ChangeLocation,
		ChangeCost, ChangeCapacity, ChangeAudience, ChangeRegistrationURL, ChangeOther:
		return true
	default:
		return false
	}
}

// ChangeRequest asks for a correction to a published event.
type ChangeRequest struct {
	ID             string     `json:"id"`
	EventID        string     `json:"eventId"`
	RequesterName  string     `json:"requesterName"`
	RequesterEmail string     `json:"requesterEmail"`
	RequesterPhone string     `json:"requesterPhone,omitempty"`
	ChangeType     ChangeType `json:"changeType"`
	CurrentValue   string     `json:"currentValue"`
	RequestedValue string     `json:"requestedValue"`
	Reason         string     `json:"reason"`
	AdditionalInfo string     `json:"additionalInfo,omitempty"`
	SubmittedAt    time.Time  `json:"submittedAt"`
}
