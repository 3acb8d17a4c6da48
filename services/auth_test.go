package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/internconnect/internconnect/core"
)

// Requirement: Register validates fields, rejects duplicate emails, and
// signs the new account in with a password-redacted session.
func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name        string
		input       core.RegisterInput
		setup       func(*FakeStorage) error
		wantErr     error
		wantMsgs    int // expected validation message count, 0 means not a validation failure
		wantSession bool
	}{
		{
			name:        "registers valid student",
			input:       validStudent(),
			wantSession: true,
		},
		{
			name:        "registers valid company",
			input:       validCompany(),
			wantSession: true,
		},
		{
			name: "rejects unknown role",
			input: func() core.RegisterInput {
				in := validStudent()
				in.Role = core.Role("wizard")
				return in
			}(),
			wantMsgs: 1,
		},
		{
			name: "rejects empty role",
			input: func() core.RegisterInput {
				in := validStudent()
				in.Role = ""
				return in
			}(),
			wantMsgs: 1,
		},
		{
			name: "rejects invalid fields with messages",
			input: core.RegisterInput{
				Role:     core.RoleStudent,
				Name:     "S",
				Email:    "sarah@yahoo.com",
				Phone:    "123",
				Password: "abc",
			},
			wantMsgs: 4,
		},
		{
			name:  "rejects duplicate email",
			input: validStudent(),
			setup: func(storage *FakeStorage) error {
				_, err := newTestAuthService(storage).Register(validStudent())
				return err
			},
			wantErr: core.ErrAccountExists,
		},
		{
			name: "rejects duplicate email across roles",
			input: func() core.RegisterInput {
				in := validStudent()
				in.Email = "shared@gmail.com"
				return in
			}(),
			setup: func(storage *FakeStorage) error {
				// Companies accept any domain, so a company can hold a
				// gmail address a student later tries to register.
				in := validCompany()
				in.Email = "shared@gmail.com"
				_, err := newTestAuthService(storage).Register(in)
				return err
			},
			wantErr: core.ErrAccountExists,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeStorage()
			if test.setup != nil {
				if err := test.setup(storage); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
			}
			service := newTestAuthService(storage)

			// Act
			session, err := service.Register(test.input)

			// Assert
			if test.wantMsgs > 0 {
				ve, ok := core.AsValidationError(err)
				if !ok {
					t.Fatalf("Register() error = %v, want validation error", err)
				}
				if len(ve.Messages) != test.wantMsgs {
					t.Errorf("got %d messages, want %d: %v", len(ve.Messages), test.wantMsgs, ve.Messages)
				}
				return
			}
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if !test.wantSession {
				return
			}
			if session == nil || service.Current() == nil {
				t.Fatal("Register() should activate a session")
			}
			if session.Account.Password != "" {
				t.Error("session must not carry the password")
			}
			if session.Role != test.input.Role {
				t.Errorf("session role = %q, want %q", session.Role, test.input.Role)
			}
		})
	}
}

// Requirement: the role is one of student or company, fixed at
// registration; anything else never becomes a persisted account.
func TestAuthService_Register_UnknownRole(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuthService(storage)

	input := validStudent()
	input.Role = core.Role("wizard")

	_, err := service.Register(input)
	ve, ok := core.AsValidationError(err)
	if !ok {
		t.Fatalf("Register() error = %v, want validation error", err)
	}
	if len(ve.Messages) != 1 || !strings.HasPrefix(ve.Messages[0], "Role") {
		t.Errorf("messages = %v, want one Role message", ve.Messages)
	}
	if service.Current() != nil {
		t.Error("session must stay anonymous")
	}

	accounts, err := storage.ListAccounts()
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("registry has %d accounts, want 0", len(accounts))
	}
}

// Requirement: the session's visible fields equal the submitted fields
// minus the password.
func TestAuthService_Register_RoundTrip(t *testing.T) {
	service := newTestAuthService(NewFakeStorage())
	input := validStudent()

	session, err := service.Register(input)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	acc := session.Account
	if acc.Email != input.Email || acc.DisplayName != input.Name {
		t.Errorf("account = %+v, want fields from input", acc)
	}
	if acc.ID == "" {
		t.Error("account should get a fresh id")
	}
	if acc.CreatedAt.IsZero() {
		t.Error("account should get a creation timestamp")
	}

	profile := acc.Profile.Student()
	if profile.Phone != input.Phone || profile.University != input.University ||
		profile.Degree != input.Degree || profile.Skills != input.Skills {
		t.Errorf("profile = %+v, want submitted fields", profile)
	}
}

// Requirement: a failed duplicate registration does not alter the
// existing registry entry.
func TestAuthService_Register_DuplicateLeavesRegistryIntact(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuthService(storage)

	if _, err := service.Register(validStudent()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	second := validStudent()
	second.Name = "Someone Else"
	second.Password = "Differ3nt!"
	if _, err := service.Register(second); !errors.Is(err, core.ErrAccountExists) {
		t.Fatalf("second Register() error = %v, want ErrAccountExists", err)
	}

	accounts, err := storage.ListAccounts()
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("registry has %d accounts, want 1", len(accounts))
	}
	if accounts[0].DisplayName != "Sarah Johnson" {
		t.Errorf("existing entry was altered: %+v", accounts[0])
	}
}

// Requirement: login needs email, role, and password to all match, and
// every mismatch yields the same error.
func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     core.Role
		wantErr  error
	}{
		{name: "valid credentials", email: "sarah@gmail.com", password: "secret", role: core.RoleStudent},
		{name: "unknown email", email: "nobody@gmail.com", password: "secret", role: core.RoleStudent, wantErr: core.ErrInvalidCredentials},
		{name: "wrong password", email: "sarah@gmail.com", password: "Secret", role: core.RoleStudent, wantErr: core.ErrInvalidCredentials},
		{name: "wrong role", email: "sarah@gmail.com", password: "secret", role: core.RoleCompany, wantErr: core.ErrInvalidCredentials},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeStorage()
			seed := newTestAuthService(storage)
			if _, err := seed.Register(validStudent()); err != nil {
				t.Fatalf("seed register failed: %v", err)
			}
			service := newTestAuthService(storage)

			// Act
			session, err := service.Login(test.email, test.password, test.role)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
				}
				if service.Current() != nil {
					t.Error("failed login must not activate a session")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if session.Account.Email != test.email || session.Account.Password != "" {
				t.Errorf("session account = %+v", session.Account)
			}
		})
	}
}

// Requirement: logout is idempotent; a second logout leaves the same
// anonymous state.
func TestAuthService_Logout_Idempotent(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuthService(storage)

	if _, err := service.Register(validStudent()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := service.Logout(); err != nil {
			t.Fatalf("Logout() #%d error = %v", i+1, err)
		}
		if service.Current() != nil {
			t.Fatalf("Current() after logout #%d should be nil", i+1)
		}
		if _, err := storage.LoadSession(); !errors.Is(err, core.ErrSessionNotFound) {
			t.Fatalf("persisted session after logout #%d should be gone, got %v", i+1, err)
		}
	}
}

// Requirement: profile updates merge shallowly and keep the session
// copy and the registry entry in sync.
func TestAuthService_UpdateProfile(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuthService(storage)

	session, err := service.Register(validStudent())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := service.UpdateProfile(core.Profile{
		core.ProfileSkills:    "Go",
		core.ProfilePortfolio: "https://sarah.dev",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if got := updated.Account.Profile[core.ProfileSkills]; got != "Go" {
		t.Errorf("session skills = %q, want Go", got)
	}
	if got := updated.Account.Profile[core.ProfileUniversity]; got != "State University" {
		t.Errorf("untouched key lost: university = %q", got)
	}

	// Registry copy must agree.
	acc, err := storage.FindAccountByID(session.Account.ID)
	if err != nil {
		t.Fatalf("FindAccountByID() error = %v", err)
	}
	if got := acc.Profile[core.ProfileSkills]; got != "Go" {
		t.Errorf("registry skills = %q, want Go", got)
	}
	if acc.Password == "" {
		t.Error("registry entry must keep its stored password")
	}

	// Persisted session must agree too.
	persisted, err := storage.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if got := persisted.Account.Profile[core.ProfilePortfolio]; got != "https://sarah.dev" {
		t.Errorf("persisted portfolio = %q", got)
	}
}

func TestAuthService_UpdateProfile_RequiresSession(t *testing.T) {
	service := newTestAuthService(NewFakeStorage())

	if _, err := service.UpdateProfile(core.Profile{core.ProfileSkills: "Go"}); !errors.Is(err, core.ErrNoActiveSession) {
		t.Errorf("UpdateProfile() error = %v, want ErrNoActiveSession", err)
	}
}

// Requirement: Restore rehydrates a persisted session and leaves the
// service anonymous when none exists.
func TestAuthService_Restore(t *testing.T) {
	storage := NewFakeStorage()

	first := newTestAuthService(storage)
	if _, err := first.Register(validStudent()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// A fresh service over the same storage picks the session up.
	second := newTestAuthService(storage)
	session, err := second.Restore()
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if session == nil || session.Account.Email != "sarah@gmail.com" {
		t.Fatalf("Restore() = %+v", session)
	}
	if second.Current() == nil {
		t.Error("Restore() should activate the session")
	}

	// Empty storage restores to anonymous without error.
	third := newTestAuthService(NewFakeStorage())
	session, err = third.Restore()
	if err != nil {
		t.Fatalf("Restore() on empty storage error = %v", err)
	}
	if session != nil || third.Current() != nil {
		t.Error("Restore() on empty storage should stay anonymous")
	}
}

// End-to-end scenarios from the product's acceptance list.
func TestAuthService_Scenarios(t *testing.T) {
	t.Run("student registers with six-char password", func(t *testing.T) {
		service := newTestAuthService(NewFakeStorage())
		session, err := service.Register(core.RegisterInput{
			Role:     core.RoleStudent,
			Name:     "Abc Student",
			Email:    "abc@gmail.com",
			Phone:    "9876543210",
			Password: "secret",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if session == nil || service.Current() == nil {
			t.Fatal("session should be authenticated")
		}
	})

	t.Run("company rejected for weak password", func(t *testing.T) {
		service := newTestAuthService(NewFakeStorage())
		_, err := service.Register(core.RegisterInput{
			Role:     core.RoleCompany,
			Name:     "TechStart Inc.",
			Email:    "hr@techstart.io",
			Phone:    "9876543210",
			Password: "Pass123",
		})
		ve, ok := core.AsValidationError(err)
		if !ok {
			t.Fatalf("Register() error = %v, want validation error", err)
		}
		found := false
		for _, msg := range ve.Messages {
			if len(msg) > 8 && msg[:8] == "Password" {
				found = true
			}
		}
		if !found {
			t.Errorf("messages missing password rule: %v", ve.Messages)
		}
		if service.Current() != nil {
			t.Error("session must stay anonymous")
		}
	})

	t.Run("login with the other role fails", func(t *testing.T) {
		storage := NewFakeStorage()
		service := newTestAuthService(storage)
		if _, err := service.Register(validStudent()); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if err := service.Logout(); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		_, err := service.Login("sarah@gmail.com", "secret", core.RoleCompany)
		if !errors.Is(err, core.ErrInvalidCredentials) {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

// Requirement: storage failures surface as wrapped errors, not as
// credential or validation failures.
func TestAuthService_StorageErrors(t *testing.T) {
	injected := errors.New("disk full")

	t.Run("append failure", func(t *testing.T) {
		storage := NewFakeStorage()
		storage.appendErr = injected
		service := newTestAuthService(storage)

		_, err := service.Register(validStudent())
		if !errors.Is(err, injected) {
			t.Errorf("Register() error = %v, want wrapped %v", err, injected)
		}
	})

	t.Run("session save failure", func(t *testing.T) {
		storage := NewFakeStorage()
		storage.saveSessionErr = injected
		service := newTestAuthService(storage)

		_, err := service.Register(validStudent())
		if !errors.Is(err, injected) {
			t.Errorf("Register() error = %v, want wrapped %v", err, injected)
		}
	})

	t.Run("lookup failure is not invalid credentials", func(t *testing.T) {
		storage := NewFakeStorage()
		storage.findAccountErr = injected
		service := newTestAuthService(storage)

		_, err := service.Login("sarah@gmail.com", "secret", core.RoleStudent)
		if errors.Is(err, core.ErrInvalidCredentials) {
			t.Error("storage failure must not read as bad credentials")
		}
		if !errors.Is(err, injected) {
			t.Errorf("Login() error = %v, want wrapped %v", err, injected)
		}
	})
}
