package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/marketpro-api/internal/domain/enum"
)

func TestAuthenticate(t *testing.T) {
	s, _ := newTestStore(t)

	user := s.Authenticate("admin", "admin")
	require.NotNil(t, user)
	assert.Equal(t, enum.UserRoleAdmin, user.Role)

	assert.Nil(t, s.Authenticate("admin", "wrong"))
	assert.Nil(t, s.Authenticate("ghost", "admin"))
}

func TestAddAndUpdateUser(t *testing.T) {
	s, _ := newTestStore(t)

	user := s.AddUser(AddUserInput{
		Username: "clerk",
		Password: "secret",
		Role:     enum.UserRoleEmployee,
		Name:     "Till Clerk",
	})
	assert.NotNil(t, s.FindUserByUsername("clerk"))
	assert.Equal(t, []string{}, user.Permissions)

	role := enum.UserRoleManager
	password := "rotated"
	updated := s.UpdateUser(user.ID, UpdateUserInput{Role: &role, Password: &password})
	require.NotNil(t, updated)
	assert.Equal(t, enum.UserRoleManager, updated.Role)

	assert.NotNil(t, s.Authenticate("clerk", "rotated"))
	assert.Nil(t, s.Authenticate("clerk", "secret"))
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestStore(t)
	user := s.AddUser(AddUserInput{Username: "clerk", Password: "pw", Name: "Clerk"})

	s.DeleteUser(user.ID)

	assert.Nil(t, s.FindUserByUsername("clerk"))
	assert.Len(t, s.Users(), 1)
}

func TestSessionSurvivesReload(t *testing.T) {
	kv := testKV(t)
	s, _ := newTestStoreOn(t, kv)
	require.Nil(t, s.CurrentUser())

	user := s.Authenticate("admin", "admin")
	require.NotNil(t, user)
	s.SetSessionUser(*user)

	reloaded, _ := newTestStoreOn(t, kv)
	current := reloaded.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "admin", current.Username)

	reloaded.ClearSession()
	again, _ := newTestStoreOn(t, kv)
	assert.Nil(t, again.CurrentUser())
}
