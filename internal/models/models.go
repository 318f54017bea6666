package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Role Enum ---
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleRecruiter  Role = "recruiter"
	RoleApplicant  Role = "applicant" // Default role for new users
)

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleRecruiter, RoleApplicant:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := Role(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

func (jt JobType) Valid() bool {
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := JobType(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
	*jt = v
	return nil
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Experience Level Enum ---
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry Level"
	ExperienceMid    ExperienceLevel = "Mid Level"
	ExperienceSenior ExperienceLevel = "Senior Level"
	ExperienceLead   ExperienceLevel = "Lead"
)

func (el ExperienceLevel) Valid() bool {
	switch el {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ExperienceLevel
func (el *ExperienceLevel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan ExperienceLevel: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := ExperienceLevel(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ExperienceLevel value: %s", strVal)
	}
	*el = v
	return nil
}

// Value implements the driver.Valuer interface for ExperienceLevel
func (el ExperienceLevel) Value() (driver.Value, error) {
	return string(el), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusSubmitted    ApplicationStatus = "Submitted" // Default on creation
	StatusUnderReview  ApplicationStatus = "Under Review"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusAccepted     ApplicationStatus = "Accepted"
	StatusRejected     ApplicationStatus = "Rejected"
)

func (as ApplicationStatus) Valid() bool {
	switch as {
	case StatusSubmitted, StatusUnderReview, StatusInterviewing, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := ApplicationStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*as = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// User represents an account synced from the identity provider. The ID is the
// provider's stable subject identifier, not generated locally.
type User struct {
	ID              string  `json:"id" db:"id"`
	Email           string  `json:"email" db:"email"`
	FirstName       *string `json:"firstName" db:"first_name"`
	LastName        *string `json:"lastName" db:"last_name"`
	ProfileImageURL *string `json:"profileImageUrl" db:"profile_image_url"`
	Role            Role    `json:"role" db:"role"`

	// Recruiter-specific fields
	CompanyName    *string `json:"companyName" db:"company_name"`
	CompanyWebsite *string `json:"companyWebsite" db:"company_website"`
	IsApproved     bool    `json:"isApproved" db:"is_approved"`

	// Applicant-specific fields
	Phone      *string  `json:"phone" db:"phone"`
	Location   *string  `json:"location" db:"location"`
	ResumeURL  *string  `json:"resumeUrl" db:"resume_url"`
	Skills     []string `json:"skills" db:"skills"`
	Experience *string  `json:"experience" db:"experience"`
	Education  *string  `json:"education" db:"education"`
	Bio        *string  `json:"bio" db:"bio"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Job represents a posting owned by exactly one recruiter. Deleting the
// recruiter or the job cascades to the dependent applications.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecruiterID string    `json:"recruiterId" db:"recruiter_id"`

	Title           string          `json:"title" db:"title"`
	CompanyName     string          `json:"companyName" db:"company_name"`
	CompanyLogo     *string         `json:"companyLogo" db:"company_logo"`
	Location        string          `json:"location" db:"location"`
	JobType         JobType         `json:"jobType" db:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" db:"experience_level"`

	Description      string   `json:"description" db:"description"`
	Requirements     []string `json:"requirements" db:"requirements"`
	Responsibilities []string `json:"responsibilities" db:"responsibilities"`
	Skills           []string `json:"skills" db:"skills"`

	SalaryMin      *int   `json:"salaryMin" db:"salary_min"`
	SalaryMax      *int   `json:"salaryMax" db:"salary_max"`
	SalaryCurrency string `json:"salaryCurrency" db:"salary_currency"`

	IsActive bool `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Application joins one Job and one Applicant. The (job_id, applicant_id)
// pair is unique at the database level; the resume URL is a snapshot of the
// applicant's profile taken at submission time.
type Application struct {
	ID          uuid.UUID `json:"id" db:"id"`
	JobID       uuid.UUID `json:"jobId" db:"job_id"`
	ApplicantID string    `json:"applicantId" db:"applicant_id"`

	ResumeURL   string            `json:"resumeUrl" db:"resume_url"`
	CoverLetter *string           `json:"coverLetter" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
