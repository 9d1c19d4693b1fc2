// Package theme resolves named color tokens to lipgloss colors.
//
// The chart never stores colors itself: it asks a Source for them on
// every render and re-renders when the Source reports a change. That
// keeps palette switches cheap (no restyling pass, the next frame just
// resolves differently).
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Color tokens recognized by Resolve.
const (
	TokenBarPlanned    = "bar.planned"
	TokenBarInProgress = "bar.in_progress"
	TokenBarDone       = "bar.done"
	TokenBarBlocked    = "bar.blocked"
	TokenBarCritical   = "bar.critical"
	TokenArrow         = "arrow"
	TokenArrowCritical = "arrow.critical"
	TokenMilestone     = "milestone"
	TokenGridMinor     = "grid.minor"
	TokenGridMajor     = "grid.major"
	TokenToday         = "today"
	TokenText          = "text"
	TokenTextDim       = "text.dim"
	TokenHeader        = "header"
)

// Source supplies token colors and notifies subscribers when the active
// palette changes.
type Source interface {
	// Resolve maps a token to a terminal color. Unknown tokens resolve
	// to the palette's plain text color.
	Resolve(token string) lipgloss.TerminalColor
	// Subscribe registers fn to run after every palette switch. The
	// returned func removes the subscription.
	Subscribe(fn func()) (cancel func())
}

// Palette is a named token-to-color table.
type Palette struct {
	Name   string
	Colors map[string]lipgloss.Color
}

// Gruvbox is the default palette.
var Gruvbox = Palette{
	Name: "gruvbox",
	Colors: map[string]lipgloss.Color{
		TokenBarPlanned:    "#83a598",
		TokenBarInProgress: "#fabd2f",
		TokenBarDone:       "#8ec07c",
		TokenBarBlocked:    "#fb4934",
		TokenBarCritical:   "#fe8019",
		TokenArrow:         "#928374",
		TokenArrowCritical: "#fe8019",
		TokenMilestone:     "#d3869b",
		TokenGridMinor:     "#3c3836",
		TokenGridMajor:     "#504945",
		TokenToday:         "#fb4934",
		TokenText:          "#ebdbb2",
		TokenTextDim:       "#928374",
		TokenHeader:        "#fe8019",
	},
}

// Nord is an alternative cool palette.
var Nord = Palette{
	Name: "nord",
	Colors: map[string]lipgloss.Color{
		TokenBarPlanned:    "#81a1c1",
		TokenBarInProgress: "#ebcb8b",
		TokenBarDone:       "#a3be8c",
		TokenBarBlocked:    "#bf616a",
		TokenBarCritical:   "#d08770",
		TokenArrow:         "#4c566a",
		TokenArrowCritical: "#d08770",
		TokenMilestone:     "#b48ead",
		TokenGridMinor:     "#3b4252",
		TokenGridMajor:     "#434c5e",
		TokenToday:         "#bf616a",
		TokenText:          "#eceff4",
		TokenTextDim:       "#616e88",
		TokenHeader:        "#88c0d0",
	},
}

var palettes = map[string]Palette{
	Gruvbox.Name: Gruvbox,
	Nord.Name:    Nord,
}

// PaletteByName returns the named palette, falling back to Gruvbox.
func PaletteByName(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return Gruvbox
}

// Registry is the standard Source backed by a switchable Palette.
type Registry struct {
	mu      sync.RWMutex
	active  Palette
	nextSub int
	subs    map[int]func()
}

func NewRegistry(p Palette) *Registry {
	return &Registry{active: p, subs: make(map[int]func())}
}

func (r *Registry) Resolve(token string) lipgloss.TerminalColor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.active.Colors[token]; ok {
		return c
	}
	if c, ok := r.active.Colors[TokenText]; ok {
		return c
	}
	return lipgloss.NoColor{}
}

func (r *Registry) Subscribe(fn func()) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// SetPalette switches the active palette and notifies subscribers.
func (r *Registry) SetPalette(p Palette) {
	r.mu.Lock()
	r.active = p
	fns := make([]func(), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Active returns the name of the current palette.
func (r *Registry) Active() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active.Name
}
