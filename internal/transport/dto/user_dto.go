package dto

import "jobboard/internal/models"

// UpsertUserRequest carries the identity-provider claims that drive the
// login-time upsert. Role is honored only when the row is first inserted;
// an existing row never has its role or approval flag touched by this path.
type UpsertUserRequest struct {
	ID              string       `json:"id" validate:"required"`
	Email           string       `json:"email" validate:"required,email"`
	FirstName       *string      `json:"firstName,omitempty"`
	LastName        *string      `json:"lastName,omitempty"`
	ProfileImageURL *string      `json:"profileImageUrl,omitempty"`
	Role            *models.Role `json:"role,omitempty"`
}

// UpdateProfileRequest defines the profile fields a user may change about
// themselves. Role and approval state are deliberately absent.
type UpdateProfileRequest struct {
	FirstName       *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName        *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" validate:"omitempty,url"`

	CompanyName    *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	CompanyWebsite *string `json:"companyWebsite,omitempty" validate:"omitempty,url"`

	Phone      *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Location   *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	ResumeURL  *string  `json:"resumeUrl,omitempty" validate:"omitempty,url"`
	Skills     []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	Experience *string  `json:"experience,omitempty"`
	Education  *string  `json:"education,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}

// UpdateUserRequest is the storage-level partial update derived from
// UpdateProfileRequest plus the target user id.
type UpdateUserRequest struct {
	ID              string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	CompanyName     *string
	CompanyWebsite  *string
	Phone           *string
	Location        *string
	ResumeURL       *string
	Skills          []string
	Experience      *string
	Education       *string
	Bio             *string
}
