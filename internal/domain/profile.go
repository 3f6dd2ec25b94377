package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// LocalProfileID is the key of the single profile row.
const LocalProfileID = "local"

const maxNameLen = 100

type Profile struct {
	ID        string
	FirstName string
	LastName  string
	AvatarURL string
	UpdatedAt time.Time
}

// DisplayName joins first and last name, falling back to "you".
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return "you"
	}
	return name
}

// Validate accepts empty fields; a non-empty avatar must be an http(s) URL.
func (p *Profile) Validate() error {
	for _, n := range []string{p.FirstName, p.LastName} {
		if utf8.RuneCountInString(n) > maxNameLen {
			return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidName, maxNameLen)
		}
	}
	if p.AvatarURL == "" {
		return nil
	}
	u, err := url.Parse(p.AvatarURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAvatarURL, p.AvatarURL)
	}
	return nil
}
