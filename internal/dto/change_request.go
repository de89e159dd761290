package dto

// ChangeRequestPayload is the change-request form payload.
type ChangeRequestPayload struct {
	RequesterName  string `json:"requesterName" validate:"required,min=2"`
	RequesterEmail string `json:"requesterEmail" validate:"required,email"`
	RequesterPhone string `json:"requesterPhone"`
	ChangeType     string `json:"changeType" validate:"required,changetype"`
	CurrentValue   string `json:"currentValue" validate:"required"`
	RequestedValue string `json:"requestedValue" validate:"required"`
	Reason         string `json:"reason" validate:"required,min=10"`
	AdditionalInfo string `json:"additionalInfo"`
}
