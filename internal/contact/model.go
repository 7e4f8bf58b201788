package contact

import (
	"strings"
	"time"
)

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusClosed    = "closed"
)

var validStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusQualified: {},
	StatusClosed:    {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// Inquiry is a stored contact-form submission.
type Inquiry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Interest  string    `bson:"interest,omitempty" json:"interest,omitempty"`
	Status    string    `bson:"status" json:"status"`
	SourceIP  string    `bson:"source_ip,omitempty" json:"source_ip,omitempty"`
	UserAgent string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type SubmitRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Company  string `json:"company" validate:"max=200"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Message  string `json:"message" validate:"required,max=5000"`
	Interest string `json:"interest" validate:"max=100"`
}

// Normalize trims every field so whitespace-only input counts as empty.
func (r *SubmitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Interest = strings.TrimSpace(r.Interest)
}

// SubmitResponse is the contract the site's contact form reads.
type SubmitResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	// ClearAfterMs tells the form how long to show the success banner.
	ClearAfterMs int `json:"clearAfterMs,omitempty"`
}

// Meta describes where a submission came from.
type Meta struct {
	SourceIP  string
	UserAgent string
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified closed"`
}

type ListFilter struct {
	Status string
	Email  string
}
