package models

import "time"

// EventAudience enumerates who an event targets.
type EventAudience string

const (
	AudienceOpen               EventAudience = "open"
	AudienceUniversityOnly     EventAudience = "university-only"
	AudienceSpecificDepartment EventAudience = "specific-department"
	AudienceFacultyOnly        EventAudience = "faculty-only"
	AudienceStaffOnly          EventAudience = "staff-only"
	AudienceStudentsOnly       EventAudience = "students-only"
)

// AudienceLabels maps every audience to its display label. Keep exhaustive.
var AudienceLabels = map[EventAudience]string{
	AudienceOpen:               "Abierto al Público",
	AudienceUniversityOnly:     "Solo Universidad",
	AudienceSpecificDepartment: "Departamento Específico",
	AudienceFacultyOnly:        "Solo Profesores",
	AudienceStaffOnly:          "Solo Funcionarios",
	AudienceStudentsOnly:       "Solo Estudiantes",
}

// Valid reports whether the audience is one of the known values.
func (a EventAudience) Valid() bool {
	_, ok := AudienceLabels[a]
	return ok
}

// EventCategory enumerates event classification values.
type EventCategory string

const (
	CategoryTecnologia     EventCategory = "tecnologia"
	CategoryCultura        EventCategory = "cultura"
	CategoryAcademico      EventCategory = "academico"
	CategoryDeportes       EventCategory = "deportes"
	CategoryEmprendimiento EventCategory = "emprendimiento"
	CategoryTalleres       EventCategory = "talleres"
	CategoryConferencias   EventCategory = "conferencias"
	CategorySeminarios     EventCategory = "seminarios"
	CategoryExposiciones   EventCategory = "exposiciones"
	CategoryOtro           EventCategory = "otro"
)

// CategoryLabels maps every category to its display label. Keep exhaustive.
var CategoryLabels = map[EventCategory]string{
	CategoryTecnologia:     "Tecnología",
	CategoryCultura:        "Cultura",
	CategoryAcademico:      "Académico",
	CategoryDeportes:       "Deportes",
	CategoryEmprendimiento: "Emprendimiento",
	CategoryTalleres:       "Talleres",
	CategoryConferencias:   "Conferencias",
	CategorySeminarios:     "Seminarios",
	CategoryExposiciones:   "Exposiciones",
	CategoryOtro:           "Otro",
}

// Valid reports whether the category is one of the known values.
func (c EventCategory) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// EventStatus describes where an event sits on the calendar. Descriptive
// only; it is not validated against the event date.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// ApprovalStatus captures the moderation lifecycle of an event.
type ApprovalStatus string

const (
	ApprovalPending      ApprovalStatus = "pending"
	ApprovalApproved     ApprovalStatus = "approved"
	ApprovalRejected     ApprovalStatus = "rejected"
	ApprovalNeedsChanges ApprovalStatus = "needs-changes"
)

// Valid reports whether the approval status is one of the known values.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalNeedsChanges:
		return true
	default:
		return false
	}
}

// Event is a proposed or published activity record with scheduling, audience,
// and moderation metadata. Date is an ISO-8601 calendar date; Time is a
// free-text range string.
type Event struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Organizer        string         `json:"organizer"`
	OrganizerEmail   string         `json:"organizerEmail"`
	OrganizerPhone   string         `json:"organizerPhone,omitempty"`
	Date             string         `json:"date"`
	Time             string         `json:"time"`
	Location         string         `json:"location"`
	Audience         EventAudience  `json:"audience"`
	AudienceDetails  string         `json:"audienceDetails,omitempty"`
	Cost             int            `json:"cost"`
	Capacity         *int           `json:"capacity,omitempty"`
	CurrentAttendees *int           `json:"currentAttendees,omitempty"`
	RegistrationURL  string         `json:"registrationUrl,omitempty"`
	Status           EventStatus    `json:"status"`
	ApprovalStatus   ApprovalStatus `json:"approvalStatus"`
	LastUpdated      time.Time      `json:"lastUpdated"`
	Category         EventCategory  `json:"category"`
	Tags             []string       `json:"tags,omitempty"`
	Requirements     string         `json:"requirements,omitempty"`
	ContactInfo      string         `json:"contactInfo,omitempty"`
	AdminNotes       string         `json:"adminNotes,omitempty"`
	ProposedBy       string         `json:"proposedBy,omitempty"`
	ProposedAt       *time.Time     `json:"proposedAt,omitempty"`
	ApprovedBy       string         `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time     `json:"approvedAt,omitempty"`
	RejectionReason  string         `json:"rejectionReason,omitempty"`
}

// CostFilter buckets events by price.
type CostFilter string

const (
	CostAll  CostFilter = "all"
	CostFree CostFilter = "free"
	CostPaid CostFilter = "paid"
)

// DateFilter buckets events against the current moment.
type DateFilter string

const (
	DateAll       DateFilter = "all"
	DateThisWeek  DateFilter = "this-week"
	DateThisMonth DateFilter = "this-month"
	DateNextMonth DateFilter = "next-month"
)

// EventFilter is the composite filter specification for the public listing.
// Zero values ("" or "all") pass their dimension. Weeks follow ISO-8601
// (Monday start) for the this-week bucket.
type EventFilter struct {
	Audience EventAudience
	Category EventCategory
	Cost     CostFilter
	Date     DateFilter
	Search   string
}
