package services

import (
	"github.com/internconnect/internconnect/adapters/memory"
	"github.com/internconnect/internconnect/core"
	"github.com/internconnect/internconnect/pkg/crypto"
)

// FakeStorage is a test-only wrapper over the in-memory adapter that
// exposes error fields for behavior injection.
type FakeStorage struct {
	*memory.Adapter

	findAccountErr    error
	appendErr         error
	updateErr         error
	saveSessionErr    error
	loadSessionErr    error
	findEnrollmentErr error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Adapter: memory.New()}
}

func (f *FakeStorage) FindAccountByEmail(email string) (*core.Account, error) {
	if f.findAccountErr != nil {
		return nil, f.findAccountErr
	}
	return f.Adapter.FindAccountByEmail(email)
}

func (f *FakeStorage) AppendAccount(a *core.Account) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	return f.Adapter.AppendAccount(a)
}

func (f *FakeStorage) UpdateAccount(a *core.Account) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.Adapter.UpdateAccount(a)
}

func (f *FakeStorage) SaveSession(s *core.Session) error {
	if f.saveSessionErr != nil {
		return f.saveSessionErr
	}
	return f.Adapter.SaveSession(s)
}

func (f *FakeStorage) LoadSession() (*core.Session, error) {
	if f.loadSessionErr != nil {
		return nil, f.loadSessionErr
	}
	return f.Adapter.LoadSession()
}

func (f *FakeStorage) FindEnrollment(courseID, studentID string) (*core.Enrollment, error) {
	if f.findEnrollmentErr != nil {
		return nil, f.findEnrollmentErr
	}
	return f.Adapter.FindEnrollment(courseID, studentID)
}

// validStudent returns registration input that passes the default
// policy.
func validStudent() core.RegisterInput {
	return core.RegisterInput{
		Role:       core.RoleStudent,
		Name:       "Sarah Johnson",
		Email:      "sarah@gmail.com",
		Password:   "secret",
		Phone:      "9876543210",
		University: "State University",
		Degree:     "BSc Computer Science",
		Skills:     "Go, SQL",
	}
}

// validCompany returns registration input that passes the default
// policy.
func validCompany() core.RegisterInput {
	return core.RegisterInput{
		Role:        core.RoleCompany,
		Name:        "TechStart Inc.",
		Email:       "hr@techstart.io",
		Password:    "Passw0rd!",
		Phone:       "9876543210",
		Description: "We build developer tools for startups",
		Website:     "https://techstart.io",
	}
}

func newTestPasswords() crypto.PasswordHandler {
	return crypto.NewPlaintext()
}

func newTestAuthService(storage core.Storage) *AuthService {
	return NewAuthService(storage, storage, newTestPasswords(), core.DefaultValidationPolicy())
}
