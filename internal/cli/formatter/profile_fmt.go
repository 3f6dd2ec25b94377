package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadro/internal/domain"
)

// FormatProfile renders the local user's profile.
func FormatProfile(p *domain.Profile) string {
	value := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return Dim("--")
		}
		return StyleFg.Render(s)
	}
	var b strings.Builder
	b.WriteString(Bold(p.DisplayName()) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("FIRST "), value(p.FirstName))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("LAST  "), value(p.LastName))
	fmt.Fprintf(&b, "%s  %s", StyleDim.Render("AVATAR"), value(p.AvatarURL))
	return RenderBox("Profile", b.String())
}
