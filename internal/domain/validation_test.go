package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("asha@example.com"))
	assert.True(t, IsValidEmail(" asha@mail.gov.in "))
	assert.False(t, IsValidEmail("asha@example"))
	assert.False(t, IsValidEmail("asha example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestFieldFormats(t *testing.T) {
	assert.True(t, IsContactNumber("9876543210"))
	assert.False(t, IsContactNumber("98765"))
	assert.False(t, IsContactNumber("98765432ab"))

	assert.True(t, IsOTP("123456"))
	assert.False(t, IsOTP("12345"))

	assert.True(t, IsDate("2025-05-22"))
	assert.False(t, IsDate("22-05-2025"))
	assert.True(t, IsDateTime("2025-05-22T14:30:00"))
	assert.False(t, IsDateTime("2025-05-22 14:30"))
}

func TestPasswordProblems(t *testing.T) {
	assert.Empty(t, PasswordProblems("Str0ng!pass"))
	assert.Len(t, PasswordProblems("weak"), 4)
	assert.Equal(t, []string{"Password must contain a special character"}, PasswordProblems("Str0ngpass"))
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("email", "Please enter a valid email address")
	errs.Add("password", "Password is required")
	errs.Add("email", "Email is required")

	assert.Error(t, errs.Err())
	assert.Equal(t, "email: Please enter a valid email address; password: Password is required; email: Email is required", errs.Error())
	assert.Equal(t, []string{"Please enter a valid email address", "Password is required", "Email is required"}, errs.Messages())
	assert.Equal(t, []string{"Please enter a valid email address", "Email is required"}, errs.Fields()["email"])
}
