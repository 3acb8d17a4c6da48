package core

// Storage ports. Adapters implement these against whatever persistence
// the platform offers; services never touch a storage API directly.

// AccountStorage is the registry of all registered accounts.
type AccountStorage interface {
	ListAccounts() ([]*Account, error)

	// FindAccountByEmail returns ErrAccountNotFound when no account
	// carries the email.
	FindAccountByEmail(email string) (*Account, error)
	FindAccountByID(id string) (*Account, error)

	AppendAccount(a *Account) error
	UpdateAccount(a *Account) error
}

// SessionStorage persists the single current-session record. The value
// is fully overwritten on every save.
type SessionStorage interface {
	// LoadSession returns ErrSessionNotFound when no session is
	// persisted.
	LoadSession() (*Session, error)
	SaveSession(s *Session) error

	// ClearSession removes the persisted session. Clearing an absent
	// session is not an error.
	ClearSession() error
}

// ListingStorage holds internship postings and their applications.
type ListingStorage interface {
	ListInternships() ([]*Internship, error)
	FindInternship(id string) (*Internship, error)
	AppendInternship(in *Internship) error
	UpdateInternship(in *Internship) error

	ListApplications(internshipID string) ([]*Application, error)
	ListStudentApplications(studentID string) ([]*Application, error)
	FindApplication(id string) (*Application, error)
	AppendApplication(a *Application) error
	UpdateApplication(a *Application) error
}

// CourseStorage holds the free-course catalog and enrollments.
type CourseStorage interface {
	ListCourses() ([]*Course, error)
	FindCourse(id string) (*Course, error)
	AppendCourse(c *Course) error

	ListEnrollments(studentID string) ([]*Enrollment, error)
	FindEnrollment(courseID, studentID string) (*Enrollment, error)
	AppendEnrollment(e *Enrollment) error
	UpdateEnrollment(e *Enrollment) error
}

// Storage is the full persistence surface the library needs.
type Storage interface {
	AccountStorage
	SessionStorage
	ListingStorage
	CourseStorage
}
