package profiles

import "time"

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	ProfileID       string           `json:"profileId"`
	Name            string           `json:"name"`
	JobTitle        string           `json:"jobTitle"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	CareerObjective string           `json:"careerObjective"`
	Skills          []string         `json:"skills"`
	JobHistory      []JobEntry       `json:"jobHistory"`
	Education       []EducationEntry `json:"education"`
	Internships     []JobEntry       `json:"internships"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func toResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:       p.ID,
		Name:            p.Name,
		JobTitle:        p.JobTitle,
		ContactInfo:     p.ContactInfo,
		CareerObjective: p.CareerObjective,
		Skills:          emptySlice(p.Skills),
		JobHistory:      emptyEntries(p.JobHistory),
		Education:       emptyEducation(p.Education),
		Internships:     emptyEntries(p.Internships),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
