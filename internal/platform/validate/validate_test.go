// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/indiepub/internal/platform/apperr"
	"github.com/taibuivan/indiepub/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Neon Highway", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_OneOf checks closed-set membership, used for PRO names and statuses.
*/
func TestValidator_OneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"member", "BMI", true},
		{"empty_allowed_when_listed", "", true},
		{"case_sensitive", "bmi", false},
		{"unknown", "PRS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("pro_name", tt.value, "ASCAP", "BMI", "SESAC", "")
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Date verifies ISO calendar dates.
*/
func TestValidator_Date(t *testing.T) {
	v := &validate.Validator{}
	v.Date("date", "2024-04-15", "2006-01-02")
	assert.False(t, v.HasErrors())

	v.Date("date", "15/04/2024", "2006-01-02")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain collects every failure into one error.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		MaxLen("artist", "abcdef", 3).
		Custom("bpm", true, "Must not be negative")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
