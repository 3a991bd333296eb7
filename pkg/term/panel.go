package term

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/motion"
)

// FrameInterval is the panel's paint cadence, matching a 60fps loop.
const FrameInterval = 16 * time.Millisecond

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	hiddenStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// frameMsg is one paint opportunity.
type frameMsg time.Time

// KeyMap holds the panel's key bindings.
type KeyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard panel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Quit}}
}

// Panel is a bubbletea model hosting one motion-controlled element.
// Each frame tick steps the frame scheduler and advances the surface,
// so paint opportunities are exactly the panel's rendered frames.
type Panel struct {
	controller *motion.Controller
	surface    *Surface
	keys       KeyMap
	help       help.Model
	life       core.Lifetime
	width      int
	quitting   bool
}

var _ tea.Model = (*Panel)(nil)

// NewPanel creates a panel around a hidden element with the given
// content and accent color. Press space to toggle it in and out.
func NewPanel(opts motion.Options, content string, accent color.RGBA) *Panel {
	p := &Panel{
		surface: NewSurface(content, accent),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	p.controller = core.UseController(&p.life, func() *motion.Controller {
		return motion.New(false, opts)
	})
	// Rebind on every mount: the controller clears the slot when the
	// element leaves the surface.
	core.UseObservable(&p.life, p.controller.Presence(), func(present bool) {
		if present {
			p.controller.Binding().Bind(p.surface)
		}
	})
	return p
}

// Controller returns the panel's lifecycle controller.
func (p *Panel) Controller() *motion.Controller {
	return p.controller
}

// Init implements tea.Model.
func (p *Panel) Init() tea.Cmd {
	return p.tick()
}

func (p *Panel) tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (p *Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		frame.Step()
		p.surface.Advance()
		return p, p.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Toggle):
			p.controller.UpdateVisible(func(v bool) bool { return !v })
		case key.Matches(msg, p.keys.Quit):
			p.quitting = true
			p.life.Dispose()
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width
	}
	return p, nil
}

// View implements tea.Model.
func (p *Panel) View() string {
	defer errors.Recover("term.Panel.View")
	if p.quitting {
		return ""
	}

	status := statusStyle.Render(fmt.Sprintf(
		"%s %v   %s %v   %s %v",
		labelStyle.Render("phase:"), p.controller.Phase(),
		labelStyle.Render("present:"), p.controller.Present(),
		labelStyle.Render("visible:"), p.controller.Visible(),
	))

	body := hiddenStyle.Render("(hidden)")
	if p.controller.Present() {
		body = p.surface.Render()
	}

	return status + "\n\n" + body + "\n\n" + p.help.View(p.keys) + "\n"
}
