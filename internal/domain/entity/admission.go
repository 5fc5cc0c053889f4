// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionStatus is the review state of an admission application.
type AdmissionStatus string

const (
	AdmissionPending     AdmissionStatus = "pending"
	AdmissionShortlisted AdmissionStatus = "shortlisted"
	AdmissionRejected    AdmissionStatus = "rejected"
	AdmissionAccepted    AdmissionStatus = "accepted"
)

// IsValid checks if the AdmissionStatus is a valid value.
func (s AdmissionStatus) IsValid() bool {
	switch s {
	case AdmissionPending, AdmissionShortlisted, AdmissionRejected, AdmissionAccepted:
		return true
	default:
		return false
	}
}

// AdmissionDocument references an uploaded supporting document.
type AdmissionDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AdmissionForm is an application submitted by a prospective student.
type AdmissionForm struct {
	ID          uuid.UUID           `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	DOB         time.Time           `json:"dob"`
	Address     string              `json:"address"`
	ClassName   string              `json:"className"`
	Documents   []AdmissionDocument `json:"documents,omitempty"`
	Status      AdmissionStatus     `json:"status"`
	Remarks     string              `json:"remarks,omitempty"`
	SubmittedAt time.Time           `json:"submittedAt"`
	ReviewedAt  *time.Time          `json:"reviewedAt,omitempty"`
}

// AdmissionStats counts applications per status.
type AdmissionStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Shortlisted int64 `json:"shortlisted"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
}
