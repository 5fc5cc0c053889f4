package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
	Role     string `json:"role" validate:"required,role"`
}

func TestValidate_OK(t *testing.T) {
	err := New().Validate(&signup{Email: "a@x.io", Password: "pw", Role: "lms_student"})

	assert.NoError(t, err)
}

func TestValidate_FieldMessagesUseJSONNames(t *testing.T) {
	err := New().Validate(&signup{Email: "not-an-email", Password: "   ", Role: "janitor"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "password cannot be blank", verr.Fields["password"])
	assert.Contains(t, verr.Fields["role"], "must be one of")
	assert.Equal(t,
		"email: email must be a valid email address; password: password cannot be blank; role: role must be one of student, staff, admin, lms_student",
		verr.Error(),
	)
}

func TestValidate_Required(t *testing.T) {
	err := New().Validate(&signup{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email is a required field", verr.Fields["email"])
	assert.Equal(t, "role is a required field", verr.Fields["role"])
}
