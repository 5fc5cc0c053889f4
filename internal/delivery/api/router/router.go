// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sms/internal/delivery/api/middleware"
	"sms/internal/delivery/api/router/handler"
	"sms/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AdmissionHandler    *handler.AdmissionHandler
	AnnouncementHandler *handler.AnnouncementHandler
	StudentHandler      *handler.StudentHandler
	StaffHandler        *handler.StaffHandler
	LMSHandler          *handler.LMSHandler
	AuthMiddleware      *middleware.AuthMiddleware
	ProfileMiddleware   *middleware.ProfileMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	admissionHandler    *handler.AdmissionHandler
	announcementHandler *handler.AnnouncementHandler
	studentHandler      *handler.StudentHandler
	staffHandler        *handler.StaffHandler
	lmsHandler          *handler.LMSHandler
	auth                *middleware.AuthMiddleware
	profile             *middleware.ProfileMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		admissionHandler:    params.AdmissionHandler,
		announcementHandler: params.AnnouncementHandler,
		studentHandler:      params.StudentHandler,
		staffHandler:        params.StaffHandler,
		lmsHandler:          params.LMSHandler,
		auth:                params.AuthMiddleware,
		profile:             params.ProfileMiddleware,
	}
}

// Role sets declared per route.
var (
	staffAndAdmin = []entity.Role{entity.RoleStaff, entity.RoleAdmin}
	lmsLearners   = []entity.Role{entity.RoleStudent, entity.RoleLMSStudent}
	lmsReaders    = []entity.Role{entity.RoleStudent, entity.RoleLMSStudent, entity.RoleStaff, entity.RoleAdmin}
)

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/profile", r.authHandler.Profile, r.auth.Guard()...)
	}

	admissionGroup := e.Group("/admission")
	{
		admissionGroup.POST("/apply", r.admissionHandler.Apply)

		reviewers := r.auth.Guard(staffAndAdmin...)
		admissionGroup.GET("/applications", r.admissionHandler.List, reviewers...)
		admissionGroup.GET("/applications/:id", r.admissionHandler.Get, reviewers...)
		admissionGroup.PATCH("/applications/:id/status", r.admissionHandler.UpdateStatus, reviewers...)
		admissionGroup.GET("/dashboard", r.admissionHandler.Dashboard, reviewers...)
	}

	announcementGroup := e.Group("/announcements")
	{
		announcementGroup.GET("", r.announcementHandler.List)
		announcementGroup.GET("/:id", r.announcementHandler.Get)

		publishers := r.auth.Guard(staffAndAdmin...)
		announcementGroup.POST("", r.announcementHandler.Create, publishers...)
		announcementGroup.PATCH("/:id", r.announcementHandler.Update, publishers...)
		announcementGroup.DELETE("/:id", r.announcementHandler.Delete, publishers...)
	}

	// Student portal: student role with a linked Student profile
	studentGroup := e.Group("/student", r.auth.Guard(entity.RoleStudent)...)
	studentGroup.Use(r.profile.RequireStudentProfile)
	{
		studentGroup.GET("/dashboard", r.studentHandler.Dashboard)
		studentGroup.GET("/attendance", r.studentHandler.Attendance)
		studentGroup.GET("/grades", r.studentHandler.Grades)
		studentGroup.GET("/fees", r.studentHandler.Fees)
		studentGroup.PATCH("/fees/:feeId/pay", r.studentHandler.PayFee)
	}

	staffGroup := e.Group("/staff", r.auth.Guard(staffAndAdmin...)...)
	{
		staffGroup.GET("/dashboard", r.staffHandler.Dashboard, r.profile.RequireStaffProfile)
		staffGroup.GET("/students", r.staffHandler.Students)
		staffGroup.POST("/attendance", r.staffHandler.MarkAttendance)
		staffGroup.POST("/grades", r.staffHandler.AddGrade)
		staffGroup.GET("/subjects", r.staffHandler.Subjects, r.profile.RequireStaffProfile)
	}

	lmsGroup := e.Group("/lms")
	{
		readers := r.auth.Guard(lmsReaders...)
		lmsGroup.GET("/materials", r.lmsHandler.Materials, readers...)
		lmsGroup.GET("/assignments", r.lmsHandler.Assignments, readers...)
		lmsGroup.GET("/quizzes", r.lmsHandler.Quizzes, readers...)

		learners := append(r.auth.Guard(lmsLearners...), r.profile.RequireStudentProfile)
		lmsGroup.POST("/assignments/submit", r.lmsHandler.SubmitAssignment, learners...)
		lmsGroup.POST("/quizzes/:quizId/start", r.lmsHandler.StartQuiz, learners...)
		lmsGroup.POST("/quizzes/attempts/:attemptId/submit", r.lmsHandler.SubmitQuizAttempt, learners...)
		lmsGroup.GET("/progress", r.lmsHandler.Progress, learners...)
	}
}
