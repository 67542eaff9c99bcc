package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,shopemail"`
	Name     string `validate:"notblank"`
}

func TestCustomTags(t *testing.T) {
	tests := []struct {
		name      string
		in        profile
		wantField string
		wantTag   string
	}{
		{"valid", profile{"jane_doe-1", "jane.d@mail.com", "Jane"}, "", ""},
		{"username with space", profile{"jane doe", "jane@mail.com", "Jane"}, "Username", "username"},
		{"username with dot", profile{"jane.doe", "jane@mail.com", "Jane"}, "Username", "username"},
		{"email without tld", profile{"jane", "jane@mail", "Jane"}, "Email", "shopemail"},
		{"email with digit tld", profile{"jane", "jane@mail.c0m", "Jane"}, "Email", "shopemail"},
		{"blank name", profile{"jane", "jane@mail.com", "   "}, "Name", "notblank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			field, tag, ok := FirstFailure(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantTag, FailedTag(err, tt.wantField))
		})
	}
}

func TestFirstFailureOnForeignError(t *testing.T) {
	_, _, ok := FirstFailure(assert.AnError)
	assert.False(t, ok)
	assert.Empty(t, FailedTag(nil, "Name"))
}
