package config

import (
	"fmt"
	"strings"
)

// Validate rejects placeholder and blank values. The key is checked before
// the URL.
func (s *Settings) Validate() error {
	if s.APIKey == PlaceholderKey {
		return ErrPlaceholderKey
	}
	if s.URL == PlaceholderURL {
		return ErrPlaceholderURL
	}

	if strings.TrimSpace(s.APIKey) == "" {
		return fmt.Errorf("%w: API key", ErrEmptyValue)
	}
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("%w: WordPress URL", ErrEmptyValue)
	}
	if strings.TrimSpace(s.Out) == "" {
		return fmt.Errorf("%w: output path", ErrEmptyValue)
	}
	return nil
}

// MaskedKey returns the first 20 characters of the key followed by "...".
func (s *Settings) MaskedKey() string {
	const visible = 20
	runes := []rune(s.APIKey)
	if len(runes) <= visible {
		return s.APIKey + "..."
	}
	return string(runes[:visible]) + "..."
}
