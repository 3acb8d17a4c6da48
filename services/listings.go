package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/internconnect/internconnect/core"
)

// ListingService manages internship postings and their applicant
// pipelines. Callers pass the session they act under; nil means
// anonymous.
type ListingService struct {
	store core.ListingStorage
}

func NewListingService(store core.ListingStorage) *ListingService {
	return &ListingService{store: store}
}

// PostInternshipInput carries the posting form fields.
type PostInternshipInput struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Stipend     string   `json:"stipend"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Post publishes a new internship attributed to the session's company
// account. Students cannot post.
func (s *ListingService) Post(session *core.Session, input PostInternshipInput) (*core.Internship, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleCompany {
		return nil, core.ErrForbidden
	}

	var msgs []string
	if !core.ValidName(input.Title) {
		msgs = append(msgs, "Title must be at least 2 characters")
	}
	if !core.ValidName(input.Location) {
		msgs = append(msgs, "Location must be at least 2 characters")
	}
	if len(msgs) > 0 {
		return nil, &core.ValidationError{Messages: msgs}
	}

	listing := &core.Internship{
		ID:          uuid.NewString(),
		CompanyID:   session.Account.ID,
		Company:     session.Account.DisplayName,
		Title:       input.Title,
		Location:    input.Location,
		Stipend:     input.Stipend,
		Duration:    input.Duration,
		Description: input.Description,
		Skills:      input.Skills,
		Status:      core.ListingActive,
		PostedAt:    time.Now(),
	}

	if err := s.store.AppendInternship(listing); err != nil {
		return nil, fmt.Errorf("failed to store internship: %w", err)
	}
	return listing, nil
}

// Browse returns active internships passing the filter. Matching is
// plain substring containment; there is no ranking.
func (s *ListingService) Browse(filter core.ListingFilter) ([]*core.Internship, error) {
	all, err := s.store.ListInternships()
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	out := make([]*core.Internship, 0, len(all))
	for _, in := range all {
		if in.Status == core.ListingActive && filter.Matches(in) {
			out = append(out, in)
		}
	}
	return out, nil
}

// Postings returns every listing the session's company has posted,
// closed ones included.
func (s *ListingService) Postings(session *core.Session) ([]*core.Internship, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleCompany {
		return nil, core.ErrForbidden
	}

	all, err := s.store.ListInternships()
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	var out []*core.Internship
	for _, in := range all {
		if in.CompanyID == session.Account.ID {
			out = append(out, in)
		}
	}
	return out, nil
}

// Close stops a listing from taking new applications. Only the poster
// may close it; closing an already-closed listing is a no-op.
func (s *ListingService) Close(session *core.Session, internshipID string) (*core.Internship, error) {
	listing, err := s.owned(session, internshipID)
	if err != nil {
		return nil, err
	}

	if listing.Status == core.ListingClosed {
		return listing, nil
	}
	listing.Status = core.ListingClosed
	if err := s.store.UpdateInternship(listing); err != nil {
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}
	return listing, nil
}

// Apply submits the session's student to a listing, snapshotting the
// contact fields from their profile. One application per student per
// listing.
func (s *ListingService) Apply(session *core.Session, internshipID string) (*core.Application, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleStudent {
		return nil, core.ErrForbidden
	}

	listing, err := s.store.FindInternship(internshipID)
	if err != nil {
		return nil, err
	}
	if listing.Status != core.ListingActive {
		return nil, core.ErrListingClosed
	}

	existing, err := s.store.ListApplications(internshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	for _, a := range existing {
		if a.StudentID == session.Account.ID {
			return nil, core.ErrAlreadyApplied
		}
	}

	app := &core.Application{
		ID:           uuid.NewString(),
		InternshipID: internshipID,
		StudentID:    session.Account.ID,
		Name:         session.Account.DisplayName,
		Email:        session.Account.Email,
		Phone:        session.Account.Profile[core.ProfilePhone],
		Status:       core.ApplicationPending,
		AppliedAt:    time.Now(),
	}

	if err := s.store.AppendApplication(app); err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}
	return app, nil
}

// Applications returns everything the session's student has applied to.
func (s *ListingService) Applications(session *core.Session) ([]*core.Application, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleStudent {
		return nil, core.ErrForbidden
	}
	apps, err := s.store.ListStudentApplications(session.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Applicants lists a posting's applications for its poster.
func (s *ListingService) Applicants(session *core.Session, internshipID string) ([]*core.Application, error) {
	if _, err := s.owned(session, internshipID); err != nil {
		return nil, err
	}

	apps, err := s.store.ListApplications(internshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Advance moves an application forward in the pipeline
// (pending, shortlisted, interviewed, hired). Only the poster may move
// an applicant, and only forward.
func (s *ListingService) Advance(session *core.Session, applicationID string, next core.ApplicationStatus) (*core.Application, error) {
	app, err := s.store.FindApplication(applicationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.owned(session, app.InternshipID); err != nil {
		return nil, err
	}

	if !app.Status.CanAdvanceTo(next) {
		return nil, core.ErrInvalidTransition
	}
	app.Status = next
	if err := s.store.UpdateApplication(app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return app, nil
}

// owned resolves the listing and checks the session's company posted it.
func (s *ListingService) owned(session *core.Session, internshipID string) (*core.Internship, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleCompany {
		return nil, core.ErrForbidden
	}

	listing, err := s.store.FindInternship(internshipID)
	if err != nil {
		return nil, err
	}
	if listing.CompanyID != session.Account.ID {
		return nil, core.ErrForbidden
	}
	return listing, nil
}
