package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for profiles.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new profile for the user.
func (s *Service) Create(ctx context.Context, userID string, p Profile) (Profile, error) {
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	assignEntryIDs(&p)
	if err := validateEntryIDs(p); err != nil {
		return Profile{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.UserID = userID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Get returns a profile owned by the user.
func (s *Service) Get(ctx context.Context, userID, profileID string) (Profile, error) {
	p, err := s.Repo.GetByID(ctx, profileID)
	if err != nil {
		return Profile{}, err
	}
	if p.UserID != userID {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// List returns all profiles owned by the user.
func (s *Service) List(ctx context.Context, userID string) ([]Profile, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Patch describes a field-level profile update. Nil fields are left unchanged;
// provided fields replace the stored section wholesale.
type Patch struct {
	Name            *string
	JobTitle        *string
	ContactInfo     *ContactInfo
	CareerObjective *string
	Skills          *[]string
	JobHistory      *[]JobEntry
	Education       *[]EducationEntry
	Internships     *[]JobEntry
}

// Update applies a field-level patch to a profile owned by the user.
func (s *Service) Update(ctx context.Context, userID, profileID string, patch Patch) (Profile, error) {
	p, err := s.Get(ctx, userID, profileID)
	if err != nil {
		return Profile{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.JobTitle != nil {
		p.JobTitle = *patch.JobTitle
	}
	if patch.ContactInfo != nil {
		p.ContactInfo = *patch.ContactInfo
	}
	if patch.CareerObjective != nil {
		p.CareerObjective = *patch.CareerObjective
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	if patch.JobHistory != nil {
		p.JobHistory = *patch.JobHistory
	}
	if patch.Education != nil {
		p.Education = *patch.Education
	}
	if patch.Internships != nil {
		p.Internships = *patch.Internships
	}

	assignEntryIDs(&p)
	if err := validateEntryIDs(p); err != nil {
		return Profile{}, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Delete removes a profile owned by the user.
func (s *Service) Delete(ctx context.Context, userID, profileID string) error {
	return s.Repo.Delete(ctx, userID, profileID)
}

func assignEntryIDs(p *Profile) {
	for i := range p.JobHistory {
		if p.JobHistory[i].ID == "" {
			p.JobHistory[i].ID = uuid.NewString()
		}
	}
	for i := range p.Internships {
		if p.Internships[i].ID == "" {
			p.Internships[i].ID = uuid.NewString()
		}
	}
	for i := range p.Education {
		if p.Education[i].ID == "" {
			p.Education[i].ID = uuid.NewString()
		}
	}
}

func validateEntryIDs(p Profile) error {
	if err := uniqueJobEntryIDs("jobHistory", p.JobHistory); err != nil {
		return err
	}
	if err := uniqueJobEntryIDs("internships", p.Internships); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(p.Education))
	for _, e := range p.Education {
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate education entry id %q", ErrInvalidInput, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

func uniqueJobEntryIDs(section string, entries []JobEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate %s entry id %q", ErrInvalidInput, section, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
