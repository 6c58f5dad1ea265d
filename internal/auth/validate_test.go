package auth_test

import (
	"testing"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() auth.RegisterRequest {
	return auth.RegisterRequest{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john.doe@example.com",
		Phone:           "(987) 654-3210",
		Batch:           "2022",
		Department:      "CSE",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Terms:           true,
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"john.doe@example.com", true},
		{"first+tag@sub.domain.org", true},
		{"a@b", false},
		{"a.b.com", false},
		{"", false},
		{"has space@example.com", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, auth.IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain ten digits", "9876543210", true},
		{"formatted", "(987) 654-3210", true},
		{"dashed", "987-654-3210", true},
		{"too short", "12345", false},
		{"eleven digits", "19876543210", false},
		{"letters only", "abcdefghij", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, auth.IsValidPhone(tt.phone))
		})
	}
}

func TestStripPhone(t *testing.T) {
	assert.Equal(t, "9876543210", auth.StripPhone("(987) 654-3210"))
	assert.Equal(t, "919876543210", auth.StripPhone("+91-9876543210"))
	assert.Equal(t, "", auth.StripPhone("no digits"))
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		req := validRegistration()
		require.NoError(t, req.Validate())
	})

	t.Run("missing field", func(t *testing.T) {
		req := validRegistration()
		req.LastName = ""
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgRequiredFields, err.Error())
	})

	t.Run("terms not accepted", func(t *testing.T) {
		req := validRegistration()
		req.Terms = false
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgRequiredFields, err.Error())
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRegistration()
		req.Email = "not-an-email"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgInvalidEmail, err.Error())
	})

	t.Run("bad phone", func(t *testing.T) {
		req := validRegistration()
		req.Phone = "12345"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgInvalidPhone, err.Error())
	})

	t.Run("short password", func(t *testing.T) {
		req := validRegistration()
		req.Password = "abc"
		req.ConfirmPassword = "abc"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgPasswordLength, err.Error())
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := validRegistration()
		req.ConfirmPassword = "different1"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgPasswordNoMatch, err.Error())
	})

	t.Run("email rule wins over phone rule", func(t *testing.T) {
		req := validRegistration()
		req.Email = "bad"
		req.Phone = "12345"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgInvalidEmail, err.Error())
	})

	t.Run("required rule wins over everything", func(t *testing.T) {
		req := validRegistration()
		req.FirstName = ""
		req.Email = "bad"
		req.Password = "x"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, auth.MsgRequiredFields, err.Error())
	})
}
