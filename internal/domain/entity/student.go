// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is the profile linked to a student account.
type Student struct {
	ID         uuid.UUID  `json:"id"`
	AccountID  uuid.UUID  `json:"userId"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	ClassName  string     `json:"className"`
	RollNumber int        `json:"rollNumber"`
	Phone      string     `json:"phone,omitempty"`
	Address    string     `json:"address,omitempty"`
	DOB        *time.Time `json:"dob,omitempty"`
	Email      string     `json:"email,omitempty"` // Filled from the linked account on listings.
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// FeeStatus is the payment state of a fee.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// Fee is an amount a student owes.
type Fee struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   uuid.UUID  `json:"studentId"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"dueDate"`
	PaidDate    *time.Time `json:"paidDate,omitempty"`
	Status      FeeStatus  `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AttendanceStatus is the presence mark for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// IsValid checks if the AttendanceStatus is a valid value.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance is unique per (StudentID, Date). Date is always truncated to a UTC day.
type Attendance struct {
	ID        uuid.UUID        `json:"id"`
	StudentID uuid.UUID        `json:"studentId"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// AttendanceDay truncates t to midnight UTC, the key used for attendance upserts.
func AttendanceDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Grade is one exam result of a student in a subject.
type Grade struct {
	ID        uuid.UUID  `json:"id"`
	StudentID uuid.UUID  `json:"studentId"`
	SubjectID uuid.UUID  `json:"subjectId"`
	Marks     float64    `json:"marks"`
	MaxMarks  float64    `json:"maxMarks"`
	ExamType  string     `json:"examType"`
	ExamDate  *time.Time `json:"examDate,omitempty"`
	Remarks   string     `json:"remarks,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// StudentDashboard aggregates the most recent records of a student.
type StudentDashboard struct {
	Student    *Student      `json:"student"`
	Email      string        `json:"email"`
	Fees       []*Fee        `json:"fees"`
	Attendance []*Attendance `json:"attendance"`
	Grades     []*Grade      `json:"grades"`
}
