package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_ResolveKnownToken(t *testing.T) {
	r := NewRegistry(Gruvbox)
	assert.Equal(t, lipgloss.Color("#fb4934"), r.Resolve(TokenToday))
}

func TestRegistry_UnknownTokenFallsBackToText(t *testing.T) {
	r := NewRegistry(Gruvbox)
	assert.Equal(t, r.Resolve(TokenText), r.Resolve("no.such.token"))
}

func TestRegistry_SetPaletteNotifiesSubscribers(t *testing.T) {
	r := NewRegistry(Gruvbox)
	notified := 0
	cancel := r.Subscribe(func() { notified++ })

	r.SetPalette(Nord)
	assert.Equal(t, 1, notified)
	assert.Equal(t, "nord", r.Active())
	assert.Equal(t, lipgloss.Color("#bf616a"), r.Resolve(TokenToday))

	cancel()
	r.SetPalette(Gruvbox)
	assert.Equal(t, 1, notified, "canceled subscription must not fire")
}

func TestPaletteByName_FallsBackToGruvbox(t *testing.T) {
	assert.Equal(t, "gruvbox", PaletteByName("solarized").Name)
	assert.Equal(t, "nord", PaletteByName("nord").Name)
}
