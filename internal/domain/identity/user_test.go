package identity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserInput() NewUserInput {
	return NewUserInput{
		Email:     "  Jane@Example.com ",
		Username:  "jane.doe",
		Password:  "s3cretpass",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+12025550123",
		Role:      RoleCoder,
	}
}

func TestNewUser(t *testing.T) {
	t.Run("creates unverified user", func(t *testing.T) {
		user, err := NewUser(validUserInput())

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "jane.doe", user.Username)
		assert.Equal(t, RoleCoder, user.Role)
		assert.Equal(t, UserTypeIndividual, user.Type)
		assert.False(t, user.IsEmailVerified)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
		assert.True(t, user.VerifyPassword("s3cretpass"))

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*UserRegisteredEvent)
		assert.True(t, ok)
	})

	t.Run("rejects admin roles on sign up", func(t *testing.T) {
		in := validUserInput()
		in.Role = RoleSuperAdmin

		_, err := NewUser(in)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
		assert.Equal(t, "role", de.Details[0].Field)
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		in := validUserInput()
		in.Email = "not-an-email"
		in.Phone = "12"
		in.Password = "short"

		_, err := NewUser(in)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		fields := make([]string, 0, len(de.Details))
		for _, d := range de.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"email", "password", "phone"}, fields)
	})

	t.Run("rejects unknown user type", func(t *testing.T) {
		in := validUserInput()
		in.Type = "COMPANY"

		_, err := NewUser(in)
		assert.Error(t, err)
	})
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := user.ChangePassword("nope", "anotherpass")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect")
	})

	t.Run("changes password", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("s3cretpass", "anotherpass"))
		assert.True(t, user.VerifyPassword("anotherpass"))
		assert.False(t, user.VerifyPassword("s3cretpass"))
	})
}

func TestUser_ResetPassword(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)
	version := user.Version

	t.Run("rejects a weak password", func(t *testing.T) {
		err := user.ResetPassword("short")
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
		require.Len(t, de.Details, 1)
		assert.Equal(t, "password", de.Details[0].Field)
		assert.Equal(t, version, user.Version)
		assert.True(t, user.VerifyPassword("s3cretpass"))
	})

	t.Run("replaces the password", func(t *testing.T) {
		require.NoError(t, user.ResetPassword("brandnewpass"))
		assert.True(t, user.VerifyPassword("brandnewpass"))
		assert.False(t, user.VerifyPassword("s3cretpass"))
		assert.Equal(t, version+1, user.Version)
	})
}

func TestUser_MarkEmailVerified(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)
	user.ClearDomainEvents()

	user.MarkEmailVerified()
	user.MarkEmailVerified()

	assert.True(t, user.IsEmailVerified)
	assert.Len(t, user.GetDomainEvents(), 1)
	assert.True(t, user.Actor().EmailVerified)
}

func TestActor_Require(t *testing.T) {
	client := NewActor(uuid.New(), RoleClient, true)
	unverified := NewActor(uuid.New(), RoleCoder, false)

	assert.NoError(t, client.Require(RoleClient))
	assert.Error(t, client.Require(RoleCoder))
	assert.NoError(t, client.RequireVerified(RoleClient))
	assert.ErrorIs(t, Actor{}.Require(RoleClient), shared.ErrUnauthorized)

	err := unverified.RequireVerified(RoleCoder)
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "EMAIL_NOT_VERIFIED", de.Code)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleSuccessManager.IsValid())
	assert.False(t, Role("GUEST").IsValid())
	assert.True(t, RoleSubAdmin.IsAdmin())
	assert.False(t, RoleClient.IsAdmin())
}
