package services

import (
	"context"
	"fmt"
	"log"

	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"
)

type statsService struct {
	statsRepo storage.StatsRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(statsRepo storage.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) SuperadminStats(ctx context.Context) (*dto.SuperadminStatsResponse, error) {
	stats, err := s.statsRepo.SuperadminStats(ctx)
	if err != nil {
		log.Printf("StatsService: Error computing superadmin stats: %v", err)
		return nil, fmt.Errorf("internal error computing stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) RecruiterStats(ctx context.Context, recruiterID string) (*dto.RecruiterStatsResponse, error) {
	stats, err := s.statsRepo.RecruiterStats(ctx, recruiterID)
	if err != nil {
		log.Printf("StatsService: Error computing recruiter stats for %s: %v", recruiterID, err)
		return nil, fmt.Errorf("internal error computing stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) ApplicantStats(ctx context.Context, applicantID string) (*dto.ApplicantStatsResponse, error) {
	stats, err := s.statsRepo.ApplicantStats(ctx, applicantID)
	if err != nil {
		log.Printf("StatsService: Error computing applicant stats for %s: %v", applicantID, err)
		return nil, fmt.Errorf("internal error computing stats: %w", err)
	}
	return stats, nil
}
