package model

// All lists every persistence model in dependency order. It feeds AutoMigrate and the
// GORM Gen code generator.
func All() []any {
	return []any{
		&AccountModel{},
		&StudentModel{},
		&StaffModel{},
		&ClassModel{},
		&SubjectModel{},
		&FeeModel{},
		&AttendanceModel{},
		&GradeModel{},
		&MaterialModel{},
		&AssignmentModel{},
		&SubmissionModel{},
		&QuizModel{},
		&QuizAttemptModel{},
		&AdmissionFormModel{},
		&AnnouncementModel{},
	}
}
