package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/internconnect/internconnect/core"
)

// CourseService manages the free-course catalog, enrollments, and
// course certificates.
type CourseService struct {
	store core.CourseStorage
}

func NewCourseService(store core.CourseStorage) *CourseService {
	return &CourseService{store: store}
}

// Browse returns courses passing the filter.
func (s *CourseService) Browse(filter core.CourseFilter) ([]*core.Course, error) {
	all, err := s.store.ListCourses()
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	out := make([]*core.Course, 0, len(all))
	for _, c := range all {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Enroll signs the session's student up for a course. Enrolling twice
// in the same course is rejected.
func (s *CourseService) Enroll(session *core.Session, courseID string) (*core.Enrollment, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleStudent {
		return nil, core.ErrForbidden
	}

	if _, err := s.store.FindCourse(courseID); err != nil {
		return nil, err
	}

	existing, err := s.store.FindEnrollment(courseID, session.Account.ID)
	if err != nil && !errors.Is(err, core.ErrNotEnrolled) {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if existing != nil {
		return nil, core.ErrAlreadyEnrolled
	}

	enrollment := &core.Enrollment{
		ID:         uuid.NewString(),
		CourseID:   courseID,
		StudentID:  session.Account.ID,
		EnrolledAt: time.Now(),
	}

	if err := s.store.AppendEnrollment(enrollment); err != nil {
		return nil, fmt.Errorf("failed to store enrollment: %w", err)
	}
	return enrollment, nil
}

// Complete marks the session's enrollment finished, which issues the
// certificate. Completing an already-completed course keeps the
// original completion date.
func (s *CourseService) Complete(session *core.Session, courseID string) (*core.Enrollment, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleStudent {
		return nil, core.ErrForbidden
	}

	enrollment, err := s.store.FindEnrollment(courseID, session.Account.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotEnrolled) {
			return nil, core.ErrNotEnrolled
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}
	if enrollment.Completed() {
		return enrollment, nil
	}

	enrollment.CompletedAt = time.Now()
	if err := s.store.UpdateEnrollment(enrollment); err != nil {
		return nil, fmt.Errorf("failed to update enrollment: %w", err)
	}
	return enrollment, nil
}

// Certificates returns one certificate per completed enrollment of the
// session's student.
func (s *CourseService) Certificates(session *core.Session) ([]*core.Certificate, error) {
	if session == nil {
		return nil, core.ErrNoActiveSession
	}
	if session.Role != core.RoleStudent {
		return nil, core.ErrForbidden
	}

	enrollments, err := s.store.ListEnrollments(session.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	var out []*core.Certificate
	for _, e := range enrollments {
		if !e.Completed() {
			continue
		}
		course, err := s.store.FindCourse(e.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve course %s: %w", e.CourseID, err)
		}
		out = append(out, &core.Certificate{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			StudentID:   e.StudentID,
			IssuedAt:    e.CompletedAt,
		})
	}
	return out, nil
}
