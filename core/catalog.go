package core

import (
	"strings"
	"time"
)

// ListingStatus is the lifecycle state of an internship posting.
type ListingStatus string

const (
	ListingActive ListingStatus = "active"
	ListingClosed ListingStatus = "closed"
)

// Internship is a posting created by a company account.
type Internship struct {
	ID          string        `json:"id"`
	CompanyID   string        `json:"companyId"`
	Company     string        `json:"company"`
	Title       string        `json:"title"`
	Location    string        `json:"location"`
	Stipend     string        `json:"stipend"`
	Duration    string        `json:"duration"`
	Description string        `json:"description"`
	Skills      []string      `json:"skills"`
	Status      ListingStatus `json:"status"`
	PostedAt    time.Time     `json:"postedAt"`
}

// ApplicationStatus is a stage in the applicant pipeline. Stages only
// move forward: pending, shortlisted, interviewed, hired.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationHired       ApplicationStatus = "hired"
)

var applicationStages = map[ApplicationStatus]int{
	ApplicationPending:     0,
	ApplicationShortlisted: 1,
	ApplicationInterviewed: 2,
	ApplicationHired:       3,
}

// CanAdvanceTo reports whether moving from s to next is a legal forward
// step in the pipeline.
func (s ApplicationStatus) CanAdvanceTo(next ApplicationStatus) bool {
	from, ok := applicationStages[s]
	if !ok {
		return false
	}
	to, ok := applicationStages[next]
	if !ok {
		return false
	}
	return to > from
}

// Application is a student's application to an internship. Name, email,
// and phone are snapshots of the student's profile at apply time, the
// shape company dashboards list applicants in.
type Application struct {
	ID           string            `json:"id"`
	InternshipID string            `json:"internshipId"`
	StudentID    string            `json:"studentId"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    time.Time         `json:"appliedAt"`
}

// Course is a free course students can enroll in.
type Course struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
}

// Enrollment tracks a student's progress through a course. A non-zero
// CompletedAt doubles as the certificate issue date.
type Enrollment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	StudentID   string    `json:"studentId"`
	EnrolledAt  time.Time `json:"enrolledAt"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
}

// Completed reports whether the enrollment has been finished.
func (e *Enrollment) Completed() bool {
	return !e.CompletedAt.IsZero()
}

// Certificate is the record issued for a completed course.
type Certificate struct {
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	StudentID   string    `json:"studentId"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// ListingFilter narrows internship listings the way the browse page
// does: a case-insensitive substring query over title and company, and
// a substring location filter. Zero values match everything.
type ListingFilter struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// Matches reports whether the internship passes the filter.
func (f ListingFilter) Matches(in *Internship) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(in.Title), q) &&
			!strings.Contains(strings.ToLower(in.Company), q) {
			return false
		}
	}
	if f.Location != "" {
		if !strings.Contains(strings.ToLower(in.Location), strings.ToLower(f.Location)) {
			return false
		}
	}
	return true
}

// CourseFilter narrows courses by substring over title and provider.
type CourseFilter struct {
	Query string `json:"query"`
}

// Matches reports whether the course passes the filter.
func (f CourseFilter) Matches(c *Course) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Provider), q)
}
