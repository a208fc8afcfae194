// Package tui is the interactive calculator: three inputs for distance, time
// and pace, of which any two derive the third on enter.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacecalc/internal/calc"
	"pacecalc/internal/render"
)

// Field identifiers, in focus order
const (
	fieldDistance = iota
	fieldTime
	fieldPace
	fieldCount
)

var fieldLabels = [fieldCount]string{"Distance", "Time", "Pace"}

// App is the root Bubble Tea model
type App struct {
	inputs  [fieldCount]textinput.Model
	focused int

	renderer *render.Renderer
	report   string
	errMsg   string

	width  int
	height int
}

// NewApp creates the interactive calculator model
func NewApp(renderer *render.Renderer) *App {
	app := &App{renderer: renderer}

	placeholders := [fieldCount]string{"10km, marathon, 5k ...", "45:00, 1h30m ...", "4:30, 5.5 ..."}
	for i := range app.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 20
		in.Width = 24
		app.inputs[i] = in
	}
	app.inputs[fieldDistance].Focus()

	return app
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down":
			a.setFocus((a.focused + 1) % fieldCount)
			return a, nil
		case "shift+tab", "up":
			a.setFocus((a.focused + fieldCount - 1) % fieldCount)
			return a, nil
		case "enter":
			a.compute()
			return a, nil
		case "ctrl+l":
			for i := range a.inputs {
				a.inputs[i].SetValue("")
			}
			a.report = ""
			a.errMsg = ""
			a.setFocus(fieldDistance)
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

func (a *App) setFocus(i int) {
	a.inputs[a.focused].Blur()
	a.focused = i
	a.inputs[a.focused].Focus()
}

// compute runs a derivation over the filled inputs and stores the rendered
// report or the error message.
func (a *App) compute() {
	in := calc.Input{
		Distance: strings.TrimSpace(a.inputs[fieldDistance].Value()),
		Time:     strings.TrimSpace(a.inputs[fieldTime].Value()),
		Pace:     strings.TrimSpace(a.inputs[fieldPace].Value()),
	}

	metrics, err := calc.Derive(in)
	if err != nil {
		a.report = ""
		a.errMsg = err.Error()
		return
	}

	a.errMsg = ""
	a.report = a.renderer.Report(metrics)
}

// View renders the app
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pacecalc") + "\n")
	b.WriteString(helpStyle.Render("fill any two fields · enter computes · ctrl+l clears · esc quits") + "\n\n")

	for i := range a.inputs {
		label := labelStyle.Render(fieldLabels[i] + ":")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, a.inputs[i].View()) + "\n")
	}

	if a.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(a.errMsg) + "\n")
	}
	if a.report != "" {
		b.WriteString("\n" + a.report)
	}

	return b.String()
}
