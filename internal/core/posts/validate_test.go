package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContent(t *testing.T) {
	valid := []struct {
		name    string
		content string
	}{
		{"single emoji", "🚀"},
		{"several emoji", "😀🎉🔥"},
		{"emoji at the 280 limit", strings.Repeat("😀", 280)},
		{"zwj family sequence", "👨‍👩‍👧‍👦"},
		{"skin tone modifier", "👍🏽"},
		{"variation selector heart", "❤️"},
		{"flag sequence", "🇺🇦"},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, validateContent(tc.content))
		})
	}

	invalid := []struct {
		name    string
		content string
		message string
	}{
		{"empty", "", "content is required"},
		{"over the limit", strings.Repeat("😀", 281), "content too long (max 280 characters)"},
		{"plain text", "hello", "only emojis are allowed"},
		{"emoji with trailing text", "🚀x", "only emojis are allowed"},
		{"emoji with space", "🚀 🔥", "only emojis are allowed"},
		{"digits", "123", "only emojis are allowed"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			err := validateContent(tc.content)

			require.True(t, IsValidationError(err))
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "content", valErr.Field)
			assert.Equal(t, tc.message, valErr.Message)
		})
	}
}
