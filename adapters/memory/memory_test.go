package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internconnect/internconnect/core"
)

// Requirement: the adapter stores copies, so mutating a value after a
// write (or a value returned by a read) never leaks into stored state.
func TestAdapter_CopySemantics(t *testing.T) {
	adapter := New()

	account := &core.Account{
		ID:          "acc-1",
		Role:        core.RoleStudent,
		Email:       "sarah@gmail.com",
		DisplayName: "Sarah Johnson",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, adapter.AppendAccount(account))

	// Mutating the caller's copy after the write changes nothing.
	account.Email = "changed@gmail.com"
	stored, err := adapter.FindAccountByID("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "sarah@gmail.com", stored.Email)

	// Mutating a read result changes nothing either.
	stored.DisplayName = "Changed"
	again, err := adapter.FindAccountByID("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", again.DisplayName)
}

func TestAdapter_SessionLifecycle(t *testing.T) {
	adapter := New()

	_, err := adapter.LoadSession()
	assert.ErrorIs(t, err, core.ErrSessionNotFound)

	session := &core.Session{
		Account:   core.Account{ID: "acc-1", Email: "sarah@gmail.com"},
		Role:      core.RoleStudent,
		CreatedAt: time.Now(),
	}
	require.NoError(t, adapter.SaveSession(session))

	got, err := adapter.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "sarah@gmail.com", got.Account.Email)

	require.NoError(t, adapter.ClearSession())
	_, err = adapter.LoadSession()
	assert.ErrorIs(t, err, core.ErrSessionNotFound)

	require.NoError(t, adapter.ClearSession())
}

func TestAdapter_Seed(t *testing.T) {
	adapter := New()
	adapter.Seed(core.SeedInternships(time.Now()), core.SeedCourses())

	listings, err := adapter.ListInternships()
	require.NoError(t, err)
	assert.Len(t, listings, 5)

	courses, err := adapter.ListCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 4)
}
