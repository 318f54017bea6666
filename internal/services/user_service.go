package services

import (
	"context"
	"fmt"
	"log"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"
)

type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncUser upserts the user row from identity-provider claims. A role claim
// outside the closed set is rejected rather than defaulted, so a
// misconfigured provider cannot silently mint applicants.
func (s *userService) SyncUser(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error) {
	if req.Role != nil && !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
	}

	user, err := s.userRepo.Upsert(ctx, req)
	if err != nil {
		log.Printf("UserService: Error syncing user %s: %v", req.ID, err)
		return nil, mapRepoError(err, "syncing user")
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

// UpdateProfile applies profile fields to the caller's own row. Role and
// approval state are not part of the DTO, so this path can never change them.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	updateReq := &dto.UpdateUserRequest{
		ID:              userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		CompanyName:     req.CompanyName,
		CompanyWebsite:  req.CompanyWebsite,
		Phone:           req.Phone,
		Location:        req.Location,
		ResumeURL:       req.ResumeURL,
		Skills:          req.Skills,
		Experience:      req.Experience,
		Education:       req.Education,
		Bio:             req.Bio,
	}

	user, err := s.userRepo.Update(ctx, updateReq)
	if err != nil {
		log.Printf("UserService: Error updating profile for %s: %v", userID, err)
		return nil, mapRepoError(err, "updating profile")
	}
	return user, nil
}

func (s *userService) ListPendingRecruiters(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.ListPendingRecruiters(ctx)
	if err != nil {
		log.Printf("UserService: Error listing pending recruiters: %v", err)
		return nil, fmt.Errorf("internal error listing pending recruiters: %w", err)
	}
	return users, nil
}

// ApproveRecruiter flips the approval flag. Idempotent: approving an
// already-approved recruiter succeeds without further effect.
func (s *userService) ApproveRecruiter(ctx context.Context, id string) error {
	if err := s.userRepo.Approve(ctx, id); err != nil {
		log.Printf("UserService: Error approving recruiter %s: %v", id, err)
		return mapRepoError(err, "approving recruiter")
	}
	return nil
}

// RejectRecruiter permanently deletes the user row along with any jobs and
// applications via FK cascade. Irreversible.
func (s *userService) RejectRecruiter(ctx context.Context, id string) error {
	if err := s.userRepo.Reject(ctx, id); err != nil {
		log.Printf("UserService: Error rejecting recruiter %s: %v", id, err)
		return mapRepoError(err, "rejecting recruiter")
	}
	return nil
}
