package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor_Predefined(t *testing.T) {
	for _, name := range PredefinedColors() {
		hex, err := ResolveColor(name)
		require.NoError(t, err, name)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, hex)
	}
	hex, err := ResolveColor("Purple")
	require.NoError(t, err)
	assert.Equal(t, "#a855f7", hex)
}

func TestResolveColor_Hex(t *testing.T) {
	hex, err := ResolveColor("#FF00AA")
	require.NoError(t, err)
	assert.Equal(t, "#ff00aa", hex)
}

func TestResolveColor_EmptyUsesDefault(t *testing.T) {
	hex, err := ResolveColor("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectColor, hex)
}

func TestResolveColor_Invalid(t *testing.T) {
	for _, in := range []string{"red", "#fff", "123456", "#gggggg"} {
		_, err := ResolveColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestProjectValidate(t *testing.T) {
	p := &Project{Name: "Home", Status: ProjectActive, Color: "#3b82f6"}
	assert.NoError(t, p.Validate())

	p.Name = ""
	assert.ErrorIs(t, p.Validate(), ErrInvalidName)

	p.Name = "Home"
	p.Status = "archived"
	assert.ErrorIs(t, p.Validate(), ErrInvalidProjectStatus)

	p.Status = ProjectPaused
	p.Color = "blue"
	assert.ErrorIs(t, p.Validate(), ErrInvalidColor, "unresolved names are rejected")
}

func TestDisplayID(t *testing.T) {
	p := &Project{ID: "abcdef12-3456"}
	assert.Equal(t, "abcdef12", p.DisplayID())
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestProfileDisplayName(t *testing.T) {
	assert.Equal(t, "you", (&Profile{}).DisplayName())
	assert.Equal(t, "Ana", (&Profile{FirstName: "Ana"}).DisplayName())
	assert.Equal(t, "Ana Souza", (&Profile{FirstName: " Ana", LastName: "Souza "}).DisplayName())
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, (&Profile{}).Validate())
	assert.NoError(t, (&Profile{AvatarURL: "https://example.com/me.png"}).Validate())

	err := (&Profile{AvatarURL: "not a url"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidAvatarURL)

	err = (&Profile{AvatarURL: "ftp://example.com/me.png"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidAvatarURL)

	long := make([]rune, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, (&Profile{FirstName: string(long)}).Validate(), ErrInvalidName)
}
