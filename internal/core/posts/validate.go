package posts

import (
	"fmt"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// Content limits for posts
const (
	maxContentRunes = 280
)

// validateContent enforces the post content rule: 1-280 characters,
// emoji only. Returns a field-level ValidationError describing the first
// violated rule.
func validateContent(content string) error {
	if content == "" {
		return NewValidationError("content", "content is required")
	}

	if utf8.RuneCountInString(content) > maxContentRunes {
		return NewValidationError("content",
			fmt.Sprintf("content too long (max %d characters)", maxContentRunes))
	}

	if !isEmojiOnly(content) {
		return NewValidationError("content", "only emojis are allowed")
	}

	return nil
}

// isEmojiOnly reports whether content consists solely of emoji.
// Emoji are multi-rune (ZWJ sequences, flags, skin tones), so the check
// walks grapheme clusters: every cluster must be an emoji, including the
// spaces between them - whitespace is not emoji.
func isEmojiOnly(content string) bool {
	graphemes := uniseg.NewGraphemes(content)
	for graphemes.Next() {
		if !gomoji.ContainsEmoji(graphemes.Str()) {
			return false
		}
	}
	return true
}
