// Package tui implements the interactive theme preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui/components"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

// ModeChangeFunc persists a mode picked in the preview.
type ModeChangeFunc func(theme.ColorMode) error

// Options configure the preview.
type Options struct {
	Theme        *theme.Theme
	Mode         theme.ColorMode
	OnModeChange ModeChangeFunc
}

// Run launches the preview program.
func Run(opts Options) error {
	program := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int

	theme        *theme.Theme
	mode         theme.ColorMode
	styles       map[theme.ColorMode]styles.Styles
	onModeChange ModeChangeFunc

	view      viewID
	names     []string
	component int
	variant   int
	size      int
	status    string
}

const (
	minWidth  = 60
	minHeight = 15
)

type viewID int

const (
	viewComponents viewID = iota
	viewPalette
)

type modeSavedMsg struct {
	mode theme.ColorMode
	err  error
}

func newModel(opts Options) model {
	t := opts.Theme
	if t == nil {
		t = theme.Default()
	}
	styleSets := make(map[theme.ColorMode]styles.Styles, len(theme.ColorModes))
	for mode, th := range styles.Themes(t) {
		styleSets[mode] = styles.BuildStyles(th)
	}

	m := model{
		theme:        t,
		mode:         theme.NormalizeColorMode(opts.Mode),
		styles:       styleSets,
		onModeChange: opts.OnModeChange,
		names:        t.Components(),
	}
	m.resetSelection()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			m.mode = m.mode.Toggle()
			m.status = ""
			return m, m.saveMode(m.mode)
		case "tab", "right", "l":
			m.selectComponent(1)
		case "shift+tab", "left", "h":
			m.selectComponent(-1)
		case "v":
			m.variant = cycle(m.variant, len(m.variantNames()))
		case "s":
			m.size = cycle(m.size, len(m.sizeNames()))
		case "p":
			if m.view == viewPalette {
				m.view = viewComponents
			} else {
				m.view = viewPalette
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case modeSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to save %s mode: %v", msg.mode, msg.err)
		} else {
			m.status = fmt.Sprintf("saved %s mode", msg.mode)
		}
	}
	return m, nil
}

func (m model) saveMode(mode theme.ColorMode) tea.Cmd {
	if m.onModeChange == nil {
		return nil
	}
	save := m.onModeChange
	return func() tea.Msg {
		return modeSavedMsg{mode: mode, err: save(mode)}
	}
}

func (m model) View() string {
	styleSet := m.styles[m.mode]

	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("%s\n", strings.Join([]string{
			styleSet.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
			styleSet.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
			styleSet.Muted.Render("Press q to quit."),
		}, "\n"))
	}

	lines := []string{
		styleSet.Title.Render(fmt.Sprintf("Rosa theme preview (%s)", m.mode)),
		"",
	}
	if m.view == viewPalette {
		lines = append(lines, m.paletteLines(styleSet)...)
	} else {
		lines = append(lines, m.componentLines(styleSet)...)
	}

	if m.status != "" {
		lines = append(lines, "", styleSet.Muted.Render(m.status))
	}
	lines = append(lines, "", components.RenderCenteredActions(styleSet, components.PreviewQuickActions(m.mode, m.currentSpec()), m.width))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) paletteLines(styleSet styles.Styles) []string {
	return []string{
		components.RenderPalette(styleSet, m.theme.Palette()),
		"",
		components.RenderScaleLine(styleSet, "space", m.theme.Space()),
		components.RenderScaleLine(styleSet, "radii", m.theme.Radii()),
	}
}

func (m model) componentLines(styleSet styles.Styles) []string {
	if len(m.names) == 0 {
		return []string{components.NoComponents().Render(styleSet)}
	}

	name := m.names[m.component]
	lines := []string{components.RenderComponentList(styleSet, m.names, m.component), ""}

	card, err := components.RenderComponentCard(styleSet, m.theme, components.ComponentCard{
		Component: name,
		Props:     m.props(),
		Mode:      m.mode,
	})
	if err != nil {
		return append(lines, styleSet.Error.Render(err.Error()))
	}
	lines = append(lines, card)

	if len(m.variantNames()) == 0 {
		lines = append(lines, "", components.NoVariants(name).RenderCompact(styleSet))
	}
	return lines
}

func (m *model) selectComponent(delta int) {
	if len(m.names) == 0 {
		return
	}
	m.component = (m.component + delta + len(m.names)) % len(m.names)
	m.resetSelection()
}

// resetSelection points the variant and size cursors at the component's
// defaults.
func (m *model) resetSelection() {
	m.variant, m.size = 0, 0
	spec := m.currentSpec()
	if spec == nil {
		return
	}
	m.variant = indexOf(spec.VariantNames(), spec.DefaultProps.Variant)
	m.size = indexOf(spec.SizeNames(), spec.DefaultProps.Size)
}

func (m model) currentSpec() *theme.ComponentSpec {
	if len(m.names) == 0 {
		return nil
	}
	spec, err := m.theme.Component(m.names[m.component])
	if err != nil {
		return nil
	}
	return spec
}

func (m model) variantNames() []string {
	if spec := m.currentSpec(); spec != nil {
		return spec.VariantNames()
	}
	return nil
}

func (m model) sizeNames() []string {
	if spec := m.currentSpec(); spec != nil {
		return spec.SizeNames()
	}
	return nil
}

func (m model) props() theme.Props {
	var props theme.Props
	if names := m.variantNames(); len(names) > 0 {
		props.Variant = names[m.variant]
	}
	if names := m.sizeNames(); len(names) > 0 {
		props.Size = names[m.size]
	}
	return props
}

func cycle(current, n int) int {
	if n == 0 {
		return 0
	}
	return (current + 1) % n
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
