package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Profile updates overwrite the account email without a collision check, so the
// column must not carry a unique index. Usernames stay unique: they are the
// login handle.
func TestUserModel_EmailNotUnique(t *testing.T) {
	t.Parallel()

	parsed, err := schema.Parse(&UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	email := parsed.LookUpField("Email")
	require.NotNil(t, email)
	assert.False(t, email.Unique, "email must allow duplicates across accounts")
	assert.True(t, email.NotNull)

	username := parsed.LookUpField("Username")
	require.NotNil(t, username)
	assert.True(t, username.Unique, "username is the login handle and must stay unique")
}
