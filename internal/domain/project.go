package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultProjectColor is used when a project is created without a color.
const DefaultProjectColor = "#3b82f6"

// PredefinedColors lists the named colors accepted in place of a hex code.
func PredefinedColors() []string {
	return []string{"blue", "purple", "green", "orange", "pink", "cyan"}
}

func predefinedHex(name string) (string, bool) {
	switch name {
	case "blue":
		return "#3b82f6", true
	case "purple":
		return "#a855f7", true
	case "green":
		return "#22c55e", true
	case "orange":
		return "#f97316", true
	case "pink":
		return "#ec4899", true
	case "cyan":
		return "#06b6d4", true
	}
	return "", false
}

// ResolveColor normalizes a color to a lowercase #rrggbb hex code. Empty
// input yields DefaultProjectColor.
func ResolveColor(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return DefaultProjectColor, nil
	}
	if hex, ok := predefinedHex(c); ok {
		return hex, nil
	}
	if hexColorPattern.MatchString(c) {
		return c, nil
	}
	return "", fmt.Errorf("%w %q: use #RRGGBB or one of %s", ErrInvalidColor, c, strings.Join(PredefinedColors(), ", "))
}

type Project struct {
	ID        string
	Name      string
	Status    ProjectStatus
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidName)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidProjectStatus, p.Status)
	}
	if !hexColorPattern.MatchString(p.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, p.Color)
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID for compact listings.
func (p *Project) DisplayID() string {
	return ShortID(p.ID)
}

// ShortID truncates an identifier to 8 characters.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
