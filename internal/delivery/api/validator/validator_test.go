package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128,password"`
	FirstName string `json:"firstName" validate:"required,min=2,max=50,personname"`
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name       string
		input      signup
		wantFields []string
	}{
		{
			name:  "valid",
			input: signup{Email: "ana@example.com", Password: "Str0ng!Pass", FirstName: "María-José"},
		},
		{
			name:  "long password up to the limit",
			input: signup{Email: "ana@example.com", Password: strings.Repeat("Aa1!", 32), FirstName: "Ana"},
		},
		{
			name:       "password over the limit",
			input:      signup{Email: "ana@example.com", Password: strings.Repeat("Aa1!", 32) + "a", FirstName: "Ana"},
			wantFields: []string{"password"},
		},
		{
			name:       "missing everything",
			input:      signup{},
			wantFields: []string{"email", "password", "firstName"},
		},
		{
			name:       "no special character",
			input:      signup{Email: "ana@example.com", Password: "Str0ngPass", FirstName: "Ana"},
			wantFields: []string{"password"},
		},
		{
			name:       "character outside allowed set",
			input:      signup{Email: "ana@example.com", Password: "Str0ng!Pass#", FirstName: "Ana"},
			wantFields: []string{"password"},
		},
		{
			name:       "digits in name",
			input:      signup{Email: "ana@example.com", Password: "Str0ng!Pass", FirstName: "Ana2"},
			wantFields: []string{"firstName"},
		},
		{
			name:       "bad email",
			input:      signup{Email: "not-an-email", Password: "Str0ng!Pass", FirstName: "O'Neil"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Len(t, validationErr.Errors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Errors, field)
			}
		})
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: map[string]string{"b": "bad", "a": "worse"}}
	assert.Equal(t, "validation failed: field 'a': worse; field 'b': bad", err.Error())
}
