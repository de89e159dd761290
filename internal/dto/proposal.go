package dto

// ProposeEventRequest is the event proposal form payload. Every constraint is
// declared here so the validation layer can report all invalid fields at once.
type ProposeEventRequest struct {
	Title            string   `json:"title" validate:"required,min=5,max=100"`
	ShortDescription string   `json:"shortDescription" validate:"required,min=10,max=200"`
	Description      string   `json:"description" validate:"required,min=50,max=2000"`
	Category         string   `json:"category" validate:"required,category"`
	Organizer        string   `json:"organizer" validate:"required,min=2"`
	OrganizerEmail   string   `json:"organizerEmail" validate:"required,email"`
	OrganizerPhone   string   `json:"organizerPhone"`
	Date             string   `json:"date" validate:"required"`
	Time             string   `json:"time" validate:"required"`
	Location         string   `json:"location" validate:"required,min=5"`
	Audience         string   `json:"audience" validate:"required,audience"`
	AudienceDetails  string   `json:"audienceDetails"`
	Cost             int      `json:"cost" validate:"min=0"`
	Capacity         *int     `json:"capacity" validate:"omitempty,min=1"`
	RegistrationURL  string   `json:"registrationUrl" validate:"omitempty,url"`
	Requirements     string   `json:"requirements"`
	ContactInfo      string   `json:"contactInfo"`
	Tags             []string `json:"tags"`
	ProposedBy       string   `json:"proposedBy"`
	HasReadTerms     bool     `json:"hasReadTerms" validate:"eq=true"`
}
