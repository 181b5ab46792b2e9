package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructSignUp(t *testing.T) {
	valid := SignUpInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}
	assert.Nil(t, ValidateStruct(valid))

	missing := valid
	missing.Username = ""
	errs := ValidateStruct(missing)
	assert.Equal(t, "This field is required", errs["username"])

	mismatch := valid
	mismatch.PasswordConfirm = "different"
	errs = ValidateStruct(mismatch)
	assert.Equal(t, "Passwords do not match", errs["passwordconfirm"])

	badEmail := valid
	badEmail.Email = "not-an-email"
	errs = ValidateStruct(badEmail)
	assert.Equal(t, "Enter a valid email address", errs["email"])

	short := valid
	short.Password = "abc"
	short.PasswordConfirm = "abc"
	errs = ValidateStruct(short)
	assert.Equal(t, "Must be at least 8 characters", errs["password"])
}

func TestPostOwnedBy(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	post := createPost(t, db, alice, "mine", "content", "", "", alice.CreatedAt)

	assert.True(t, post.OwnedBy(alice.ID))
	assert.False(t, post.OwnedBy(bob.ID))
}
