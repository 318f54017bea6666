package dto

// SuperadminStatsResponse aggregates platform-wide counts.
type SuperadminStatsResponse struct {
	TotalRecruiters   int `json:"totalRecruiters"`
	PendingRecruiters int `json:"pendingRecruiters"`
	ActiveJobs        int `json:"activeJobs"`
	TotalApplicants   int `json:"totalApplicants"`
}

// RecruiterStatsResponse aggregates counts over a recruiter's own jobs.
// TotalViews is a permanent zero placeholder; no view tracking exists.
type RecruiterStatsResponse struct {
	JobsPosted         int `json:"jobsPosted"`
	ActiveApplications int `json:"activeApplications"`
	TotalViews         int `json:"totalViews"`
}

// ApplicantStatsResponse aggregates counts over an applicant's applications.
// ProfileViews is a permanent zero placeholder; no view tracking exists.
type ApplicantStatsResponse struct {
	ApplicationsSubmitted int `json:"applicationsSubmitted"`
	InReview              int `json:"inReview"`
	ProfileViews          int `json:"profileViews"`
}
