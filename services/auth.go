package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/internconnect/internconnect/core"
	"github.com/internconnect/internconnect/pkg/crypto"
)

// AuthService simulates a backend authentication and profile service
// over whatever Storage it is given. It owns the single current session:
// anonymous until a register or login succeeds, anonymous again after
// logout.
type AuthService struct {
	accounts  core.AccountStorage
	sessions  core.SessionStorage
	passwords crypto.PasswordHandler
	policy    core.ValidationPolicy

	mu      sync.RWMutex
	current *core.Session
}

func NewAuthService(accounts core.AccountStorage, sessions core.SessionStorage, passwords crypto.PasswordHandler, policy core.ValidationPolicy) *AuthService {
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		passwords: passwords,
		policy:    policy,
	}
}

// Register creates a new account from raw form fields and signs it in.
//
// Failures are distinguishable: a *core.ValidationError carrying the
// per-field messages, core.ErrAccountExists for a duplicate email (any
// role), or a wrapped storage error. The registry is never modified on
// failure.
func (s *AuthService) Register(input core.RegisterInput) (*core.Session, error) {
	if !input.Role.Valid() {
		return nil, &core.ValidationError{Messages: []string{"Role must be student or company"}}
	}
	if msgs := s.policy.CollectErrors(input); len(msgs) > 0 {
		return nil, &core.ValidationError{Messages: msgs}
	}

	existing, err := s.accounts.FindAccountByEmail(input.Email)
	if err != nil && !errors.Is(err, core.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, core.ErrAccountExists
	}

	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account id: %w", err)
	}

	stored, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	account := &core.Account{
		ID:          id,
		Role:        input.Role,
		Email:       input.Email,
		Password:    stored,
		DisplayName: input.Name,
		Profile:     input.Fields(),
		CreatedAt:   time.Now(),
	}

	if err := s.accounts.AppendAccount(account); err != nil {
		return nil, fmt.Errorf("failed to store account: %w", err)
	}

	return s.activate(account)
}

// Login authenticates against the registry. The email, the role
// recorded at registration, and the password must all match; any
// mismatch yields the same core.ErrInvalidCredentials so callers cannot
// probe which part was wrong.
func (s *AuthService) Login(email, password string, role core.Role) (*core.Session, error) {
	account, err := s.accounts.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if account.Role != role {
		return nil, core.ErrInvalidCredentials
	}

	valid, err := s.passwords.Verify(password, account.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	return s.activate(account)
}

// activate makes the account the current session and persists the
// redacted copy.
func (s *AuthService) activate(account *core.Account) (*core.Session, error) {
	session := &core.Session{
		Account:   account.Redacted(),
		Role:      account.Role,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.SaveSession(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, nil
}

// Logout clears the current session. Logging out while anonymous is a
// no-op, not an error.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.sessions.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// UpdateProfile shallow-merges fields into the current session's
// profile: new keys add, existing keys overwrite, untouched keys
// persist. The session copy and the registry entry are updated
// together, so both persisted representations stay in sync.
func (s *AuthService) UpdateProfile(fields core.Profile) (*core.Session, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return nil, core.ErrNoActiveSession
	}

	account, err := s.accounts.FindAccountByID(current.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for session: %w", err)
	}

	account.Profile = account.Profile.Merge(fields)
	if err := s.accounts.UpdateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	updated := *current
	updated.Account = account.Redacted()
	if err := s.sessions.SaveSession(&updated); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &updated
	s.mu.Unlock()

	return &updated, nil
}

// Restore rehydrates the persisted session on startup. An absent or
// malformed value leaves the service anonymous; there is no staleness
// check because sessions never expire.
func (s *AuthService) Restore() (*core.Session, error) {
	session, err := s.sessions.LoadSession()
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, nil
}

// Current returns the active session, or nil while anonymous.
func (s *AuthService) Current() *core.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
