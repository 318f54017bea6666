// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	GetCurrentUser(c *gin.Context)
}

// SuperadminHandlerInterface defines the methods needed by the superadmin routes.
type SuperadminHandlerInterface interface {
	GetStats(c *gin.Context)
	ListPendingRecruiters(c *gin.Context)
	ApproveRecruiter(c *gin.Context)
	RejectRecruiter(c *gin.Context)
}

// RecruiterHandlerInterface defines the methods needed by the recruiter routes.
type RecruiterHandlerInterface interface {
	GetStats(c *gin.Context)
	ListOwnJobs(c *gin.Context)
}

// ApplicantHandlerInterface defines the methods needed by the applicant routes.
type ApplicantHandlerInterface interface {
	GetStats(c *gin.Context)
	ListOwnApplications(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	UpdateProfile(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJob(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	GetApplication(c *gin.Context)
	ListJobApplications(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ SuperadminHandlerInterface = (*SuperadminHandler)(nil)
var _ RecruiterHandlerInterface = (*RecruiterHandler)(nil)
var _ ApplicantHandlerInterface = (*ApplicantHandler)(nil)
var _ ProfileHandlerInterface = (*ProfileHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
