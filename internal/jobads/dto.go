package jobads

import "time"

// JobAdResponse is the wire shape of a stored job ad.
type JobAdResponse struct {
	ID           string    `json:"jobAdId"`
	JobTitle     string    `json:"jobTitle"`
	CompanyName  string    `json:"companyName"`
	PostedAt     string    `json:"postedAt"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toJobAdResponse(ad JobAd) JobAdResponse {
	reqs := ad.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobAdResponse{
		ID:           ad.ID,
		JobTitle:     ad.JobTitle,
		CompanyName:  ad.CompanyName,
		PostedAt:     ad.PostedAt,
		Location:     ad.Location,
		Description:  ad.Description,
		Requirements: reqs,
		CreatedAt:    ad.CreatedAt,
	}
}
