// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is the profile linked to a staff account.
type Staff struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"userId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	Position   string    `json:"position,omitempty"`
	Salary     *float64  `json:"salary,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Class is a cohort of students, e.g. "10A".
type Class struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	Section   string    `json:"section"`
	CreatedAt time.Time `json:"createdAt"`
}

// Subject is taught by one staff member to one class.
type Subject struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	ClassID   uuid.UUID  `json:"classId"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
	Class     *Class     `json:"class,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SubjectSummary is a subject with the number of materials and assignments attached to it.
type SubjectSummary struct {
	Subject
	MaterialCount   int64 `json:"materialCount"`
	AssignmentCount int64 `json:"assignmentCount"`
}

// StaffDashboard aggregates a staff member's profile and teaching load.
type StaffDashboard struct {
	Staff    *Staff            `json:"staff"`
	Email    string            `json:"email"`
	Subjects []*SubjectSummary `json:"subjects"`
}
