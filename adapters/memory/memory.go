// Package memory provides an in-memory Storage adapter. It backs tests
// and demos, and doubles as the reference implementation of the storage
// semantics real adapters must match.
package memory

import (
	"sync"

	"github.com/internconnect/internconnect/core"
)

type Adapter struct {
	mu          sync.RWMutex
	accounts    []*core.Account
	session     *core.Session
	internships []*core.Internship
	apps        []*core.Application
	courses     []*core.Course
	enrollments []*core.Enrollment
}

var _ core.Storage = (*Adapter)(nil)

func New() *Adapter {
	return &Adapter{}
}

// Seed loads the starter catalog into the adapter.
func (a *Adapter) Seed(internships []*core.Internship, courses []*core.Course) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.internships = append(a.internships, internships...)
	a.courses = append(a.courses, courses...)
}

// Accounts

func (a *Adapter) ListAccounts() ([]*core.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*core.Account, len(a.accounts))
	copy(out, a.accounts)
	return out, nil
}

func (a *Adapter) FindAccountByEmail(email string) (*core.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, acc := range a.accounts {
		if acc.Email == email {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (a *Adapter) FindAccountByID(id string) (*core.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, acc := range a.accounts {
		if acc.ID == id {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (a *Adapter) AppendAccount(acc *core.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *acc
	a.accounts = append(a.accounts, &cp)
	return nil
}

func (a *Adapter) UpdateAccount(acc *core.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.accounts {
		if existing.ID == acc.ID {
			cp := *acc
			a.accounts[i] = &cp
			return nil
		}
	}
	return core.ErrAccountNotFound
}

// Session

func (a *Adapter) LoadSession() (*core.Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil, core.ErrSessionNotFound
	}
	cp := *a.session
	return &cp, nil
}

func (a *Adapter) SaveSession(s *core.Session) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *s
	a.session = &cp
	return nil
}

func (a *Adapter) ClearSession() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
	return nil
}

// Internships

func (a *Adapter) ListInternships() ([]*core.Internship, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*core.Internship, len(a.internships))
	copy(out, a.internships)
	return out, nil
}

func (a *Adapter) FindInternship(id string) (*core.Internship, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, in := range a.internships {
		if in.ID == id {
			cp := *in
			return &cp, nil
		}
	}
	return nil, core.ErrListingNotFound
}

func (a *Adapter) AppendInternship(in *core.Internship) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *in
	a.internships = append(a.internships, &cp)
	return nil
}

func (a *Adapter) UpdateInternship(in *core.Internship) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.internships {
		if existing.ID == in.ID {
			cp := *in
			a.internships[i] = &cp
			return nil
		}
	}
	return core.ErrListingNotFound
}

// Applications

func (a *Adapter) ListApplications(internshipID string) ([]*core.Application, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []*core.Application
	for _, app := range a.apps {
		if app.InternshipID == internshipID {
			cp := *app
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a *Adapter) ListStudentApplications(studentID string) ([]*core.Application, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []*core.Application
	for _, app := range a.apps {
		if app.StudentID == studentID {
			cp := *app
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a *Adapter) FindApplication(id string) (*core.Application, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, app := range a.apps {
		if app.ID == id {
			cp := *app
			return &cp, nil
		}
	}
	return nil, core.ErrApplicationNotFound
}

func (a *Adapter) AppendApplication(app *core.Application) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *app
	a.apps = append(a.apps, &cp)
	return nil
}

func (a *Adapter) UpdateApplication(app *core.Application) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.apps {
		if existing.ID == app.ID {
			cp := *app
			a.apps[i] = &cp
			return nil
		}
	}
	return core.ErrApplicationNotFound
}

// Courses

func (a *Adapter) ListCourses() ([]*core.Course, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*core.Course, len(a.courses))
	copy(out, a.courses)
	return out, nil
}

func (a *Adapter) FindCourse(id string) (*core.Course, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, c := range a.courses {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, core.ErrCourseNotFound
}

func (a *Adapter) AppendCourse(c *core.Course) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *c
	a.courses = append(a.courses, &cp)
	return nil
}

// Enrollments

func (a *Adapter) ListEnrollments(studentID string) ([]*core.Enrollment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []*core.Enrollment
	for _, e := range a.enrollments {
		if e.StudentID == studentID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a *Adapter) FindEnrollment(courseID, studentID string) (*core.Enrollment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range a.enrollments {
		if e.CourseID == courseID && e.StudentID == studentID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, core.ErrNotEnrolled
}

func (a *Adapter) AppendEnrollment(e *core.Enrollment) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := *e
	a.enrollments = append(a.enrollments, &cp)
	return nil
}

func (a *Adapter) UpdateEnrollment(e *core.Enrollment) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.enrollments {
		if existing.ID == e.ID {
			cp := *e
			a.enrollments[i] = &cp
			return nil
		}
	}
	return core.ErrNotEnrolled
}
