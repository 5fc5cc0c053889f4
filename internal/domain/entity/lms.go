// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaterialType is the kind of learning material.
type MaterialType string

const (
	MaterialPDF      MaterialType = "pdf"
	MaterialVideo    MaterialType = "video"
	MaterialLink     MaterialType = "link"
	MaterialDocument MaterialType = "document"
)

// Material is a learning resource attached to a subject.
type Material struct {
	ID          uuid.UUID    `json:"id"`
	SubjectID   uuid.UUID    `json:"subjectId"`
	Subject     *Subject     `json:"subject,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        MaterialType `json:"type"`
	URL         string       `json:"url"`
	FileName    string       `json:"fileName,omitempty"`
	FileSize    int64        `json:"fileSize,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Assignment is homework set for a subject.
type Assignment struct {
	ID          uuid.UUID     `json:"id"`
	SubjectID   uuid.UUID     `json:"subjectId"`
	Subject     *Subject      `json:"subject,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	DueDate     time.Time     `json:"dueDate"`
	MaxMarks    float64       `json:"maxMarks"`
	Submissions []*Submission `json:"submissions,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// SubmissionStatus is the grading state of a submission.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

// Submission is unique per (AssignmentID, StudentID); resubmitting replaces the file.
type Submission struct {
	ID           uuid.UUID        `json:"id"`
	AssignmentID uuid.UUID        `json:"assignmentId"`
	StudentID    uuid.UUID        `json:"studentId"`
	FileURL      string           `json:"fileUrl,omitempty"`
	FileName     string           `json:"fileName,omitempty"`
	Status       SubmissionStatus `json:"status"`
	Marks        *float64         `json:"marks,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
	SubmittedAt  time.Time        `json:"submittedAt"`
}

// Quiz is a timed test. Questions are kept as opaque JSON authored by staff.
type Quiz struct {
	ID          uuid.UUID       `json:"id"`
	SubjectID   uuid.UUID       `json:"subjectId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"` // Minutes.
	MaxMarks    float64         `json:"maxMarks"`
	Questions   json.RawMessage `json:"questions,omitempty"`
	Attempts    []*QuizAttempt  `json:"attempts,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// QuizAttempt is one run of a quiz by a student.
type QuizAttempt struct {
	ID          uuid.UUID       `json:"id"`
	QuizID      uuid.UUID       `json:"quizId"`
	StudentID   uuid.UUID       `json:"studentId"`
	Answers     json.RawMessage `json:"answers"`
	Score       *float64        `json:"score,omitempty"`
	Completed   bool            `json:"completed"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

// LearningProgress summarizes a student's LMS activity.
type LearningProgress struct {
	Assignments AssignmentProgress `json:"assignments"`
	Quizzes     QuizProgress       `json:"quizzes"`
}

type AssignmentProgress struct {
	Total  int `json:"total"`
	Graded int `json:"graded"`
}

type QuizProgress struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"averageScore"`
}

// ComputeProgress derives the progress summary from submissions and completed attempts.
// The average is 0 when there are no attempts; attempts without a score count as 0.
func ComputeProgress(submissions []*Submission, attempts []*QuizAttempt) *LearningProgress {
	progress := &LearningProgress{}
	progress.Assignments.Total = len(submissions)
	for _, s := range submissions {
		if s.Status == SubmissionGraded {
			progress.Assignments.Graded++
		}
	}

	progress.Quizzes.Total = len(attempts)
	if len(attempts) == 0 {
		return progress
	}

	var sum float64
	for _, a := range attempts {
		if a.Score != nil {
			sum += *a.Score
		}
	}
	progress.Quizzes.AverageScore = sum / float64(len(attempts))

	return progress
}
