package postgres

import (
	"encoding/json"
	"time"

	"sms/internal/domain/entity"
	"sms/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Student:      toStudentDomain(data.Student),
		Staff:        toStaffDomain(data.Staff),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Student:      fromStudentDomain(data.Student),
		Staff:        fromStaffDomain(data.Staff),
	}
}

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	student := &entity.Student{
		ID:         data.ID,
		AccountID:  data.AccountID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		ClassName:  data.ClassName,
		RollNumber: data.RollNumber,
		Phone:      data.Phone,
		Address:    data.Address,
		DOB:        data.DOB,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Account != nil {
		student.Email = data.Account.Email
	}

	return student
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		ClassName:  data.ClassName,
		RollNumber: data.RollNumber,
		Phone:      data.Phone,
		Address:    data.Address,
		DOB:        data.DOB,
	}
}

func toStaffDomain(data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:         data.ID,
		AccountID:  data.AccountID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Department: data.Department,
		Position:   data.Position,
		Salary:     data.Salary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	if data == nil {
		return nil
	}

	return &model.StaffModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Department: data.Department,
		Position:   data.Position,
		Salary:     data.Salary,
	}
}

func toClassDomain(data *model.ClassModel) *entity.Class {
	if data == nil {
		return nil
	}

	return &entity.Class{
		ID:        data.ID,
		Name:      data.Name,
		Grade:     data.Grade,
		Section:   data.Section,
		CreatedAt: data.CreatedAt,
	}
}

func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	if data == nil {
		return nil
	}

	return &entity.Subject{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		ClassID:   data.ClassID,
		StaffID:   data.StaffID,
		Class:     toClassDomain(data.Class),
		CreatedAt: data.CreatedAt,
	}
}

func toFeeDomain(data *model.FeeModel) *entity.Fee {
	return &entity.Fee{
		ID:          data.ID,
		StudentID:   data.StudentID,
		Amount:      data.Amount,
		DueDate:     data.DueDate,
		PaidDate:    data.PaidDate,
		Status:      entity.FeeStatus(data.Status),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFeeDomain(data *entity.Fee) *model.FeeModel {
	return &model.FeeModel{
		ID:          data.ID,
		StudentID:   data.StudentID,
		Amount:      data.Amount,
		DueDate:     data.DueDate,
		PaidDate:    data.PaidDate,
		Status:      string(data.Status),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	return &entity.Attendance{
		ID:        data.ID,
		StudentID: data.StudentID,
		Date:      entity.AttendanceDay(time.Time(data.Date)),
		Status:    entity.AttendanceStatus(data.Status),
		Remarks:   data.Remarks,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAttendanceDomain(data *entity.Attendance) *model.AttendanceModel {
	return &model.AttendanceModel{
		ID:        data.ID,
		StudentID: data.StudentID,
		Date:      datatypes.Date(entity.AttendanceDay(data.Date)),
		Status:    string(data.Status),
		Remarks:   data.Remarks,
	}
}

func toGradeDomain(data *model.GradeModel) *entity.Grade {
	return &entity.Grade{
		ID:        data.ID,
		StudentID: data.StudentID,
		SubjectID: data.SubjectID,
		Marks:     data.Marks,
		MaxMarks:  data.MaxMarks,
		ExamType:  data.ExamType,
		ExamDate:  data.ExamDate,
		Remarks:   data.Remarks,
		CreatedAt: data.CreatedAt,
	}
}

func fromGradeDomain(data *entity.Grade) *model.GradeModel {
	return &model.GradeModel{
		ID:        data.ID,
		StudentID: data.StudentID,
		SubjectID: data.SubjectID,
		Marks:     data.Marks,
		MaxMarks:  data.MaxMarks,
		ExamType:  data.ExamType,
		ExamDate:  data.ExamDate,
		Remarks:   data.Remarks,
	}
}

func toAdmissionDomain(data *model.AdmissionFormModel) *entity.AdmissionForm {
	docs := make([]entity.AdmissionDocument, 0, len(data.Documents))
	for _, d := range data.Documents {
		docs = append(docs, entity.AdmissionDocument{Name: d.Name, URL: d.URL})
	}

	return &entity.AdmissionForm{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Phone:       data.Phone,
		DOB:         data.DOB,
		Address:     data.Address,
		ClassName:   data.ClassName,
		Documents:   docs,
		Status:      entity.AdmissionStatus(data.Status),
		Remarks:     data.Remarks,
		SubmittedAt: data.SubmittedAt,
		ReviewedAt:  data.ReviewedAt,
	}
}

func fromAdmissionDomain(data *entity.AdmissionForm) *model.AdmissionFormModel {
	docs := make(datatypes.JSONSlice[model.AdmissionDocumentJSON], 0, len(data.Documents))
	for _, d := range data.Documents {
		docs = append(docs, model.AdmissionDocumentJSON{Name: d.Name, URL: d.URL})
	}

	return &model.AdmissionFormModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Phone:       data.Phone,
		DOB:         data.DOB,
		Address:     data.Address,
		ClassName:   data.ClassName,
		Documents:   docs,
		Status:      string(data.Status),
		Remarks:     data.Remarks,
		SubmittedAt: data.SubmittedAt,
		ReviewedAt:  data.ReviewedAt,
	}
}

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	return &entity.Announcement{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Type:      data.Type,
		Target:    data.Target,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAnnouncementDomain(data *entity.Announcement) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Type:      data.Type,
		Target:    data.Target,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}

func toMaterialDomain(data *model.MaterialModel) *entity.Material {
	return &entity.Material{
		ID:          data.ID,
		SubjectID:   data.SubjectID,
		Subject:     toSubjectDomain(data.Subject),
		Title:       data.Title,
		Description: data.Description,
		Type:        entity.MaterialType(data.Type),
		URL:         data.URL,
		FileName:    data.FileName,
		FileSize:    data.FileSize,
		CreatedAt:   data.CreatedAt,
	}
}

func toAssignmentDomain(data *model.AssignmentModel) *entity.Assignment {
	submissions := make([]*entity.Submission, 0, len(data.Submissions))
	for _, s := range data.Submissions {
		submissions = append(submissions, toSubmissionDomain(s))
	}

	return &entity.Assignment{
		ID:          data.ID,
		SubjectID:   data.SubjectID,
		Subject:     toSubjectDomain(data.Subject),
		Title:       data.Title,
		Description: data.Description,
		DueDate:     data.DueDate,
		MaxMarks:    data.MaxMarks,
		Submissions: submissions,
		CreatedAt:   data.CreatedAt,
	}
}

func toSubmissionDomain(data *model.SubmissionModel) *entity.Submission {
	return &entity.Submission{
		ID:           data.ID,
		AssignmentID: data.AssignmentID,
		StudentID:    data.StudentID,
		FileURL:      data.FileURL,
		FileName:     data.FileName,
		Status:       entity.SubmissionStatus(data.Status),
		Marks:        data.Marks,
		Feedback:     data.Feedback,
		SubmittedAt:  data.SubmittedAt,
	}
}

func fromSubmissionDomain(data *entity.Submission) *model.SubmissionModel {
	return &model.SubmissionModel{
		ID:           data.ID,
		AssignmentID: data.AssignmentID,
		StudentID:    data.StudentID,
		FileURL:      data.FileURL,
		FileName:     data.FileName,
		Status:       string(data.Status),
		Marks:        data.Marks,
		Feedback:     data.Feedback,
		SubmittedAt:  data.SubmittedAt,
	}
}

func toQuizDomain(data *model.QuizModel) *entity.Quiz {
	attempts := make([]*entity.QuizAttempt, 0, len(data.Attempts))
	for _, a := range data.Attempts {
		attempts = append(attempts, toQuizAttemptDomain(a))
	}

	return &entity.Quiz{
		ID:          data.ID,
		SubjectID:   data.SubjectID,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		MaxMarks:    data.MaxMarks,
		Questions:   json.RawMessage(data.Questions),
		Attempts:    attempts,
		CreatedAt:   data.CreatedAt,
	}
}

func toQuizAttemptDomain(data *model.QuizAttemptModel) *entity.QuizAttempt {
	return &entity.QuizAttempt{
		ID:          data.ID,
		QuizID:      data.QuizID,
		StudentID:   data.StudentID,
		Answers:     json.RawMessage(data.Answers),
		Score:       data.Score,
		Completed:   data.Completed,
		StartedAt:   data.StartedAt,
		CompletedAt: data.CompletedAt,
	}
}

func fromQuizAttemptDomain(data *entity.QuizAttempt) *model.QuizAttemptModel {
	answers := data.Answers
	if len(answers) == 0 {
		answers = json.RawMessage("{}")
	}

	return &model.QuizAttemptModel{
		ID:          data.ID,
		QuizID:      data.QuizID,
		StudentID:   data.StudentID,
		Answers:     datatypes.JSON(answers),
		Score:       data.Score,
		Completed:   data.Completed,
		StartedAt:   data.StartedAt,
		CompletedAt: data.CompletedAt,
	}
}
