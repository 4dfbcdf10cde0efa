package cli

import (
	stderrors "errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/autoreadme/pkg/readme"
)

// errAborted is returned by prompts the user cancelled.
var errAborted = stderrors.New("aborted by user")

// prompter asks the user for decisions during generate.
type prompter interface {
	// Menu shows the main menu and returns the chosen action.
	Menu() (menuAction, error)
	// ReadmeOptions asks for template and badges, starting from defaults.
	ReadmeOptions(defaults readme.Options) (readme.Options, error)
}

// menuAction is an entry of the main menu.
type menuAction string

const (
	actionGenerate menuAction = "generate"
	actionLogs     menuAction = "logs"
	actionDebug    menuAction = "debug"
	actionExit     menuAction = "exit"
)

type menuItem struct {
	Action menuAction
	Label  string
}

var mainMenu = []menuItem{
	{actionGenerate, "Generate README"},
	{actionLogs, "View Logs"},
	{actionDebug, "Enable Debug Mode"},
	{actionExit, "Exit"},
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MenuModel - Interactive main menu
// =============================================================================

// MenuModel is the bubbletea model for the main menu.
type MenuModel struct {
	Items    []menuItem
	Cursor   int
	Selected *menuItem
}

// NewMenuModel creates a menu over items.
func NewMenuModel(items []menuItem) MenuModel {
	return MenuModel{Items: items}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Items[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("What would you like to do?"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, item := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, item.Label)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Terminal prompter
// =============================================================================

// terminalPrompter runs the prompts on the controlling terminal.
type terminalPrompter struct{}

func (terminalPrompter) Menu() (menuAction, error) {
	final, err := tea.NewProgram(NewMenuModel(mainMenu)).Run()
	if err != nil {
		return "", fmt.Errorf("main menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok || m.Selected == nil {
		return actionExit, nil
	}
	return m.Selected.Action, nil
}

func (terminalPrompter) ReadmeOptions(defaults readme.Options) (readme.Options, error) {
	kind := string(defaults.Template)
	badges := defaults.Badges

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a README template").
				Options(templateOptions()...).
				Value(&kind),
			huh.NewConfirm().
				Title("Do you want to include GitHub badges?").
				Value(&badges),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return readme.Options{}, errAborted
		}
		return readme.Options{}, fmt.Errorf("readme options: %w", err)
	}
	return readme.Options{Template: readme.Kind(kind), Badges: badges}, nil
}

func templateOptions() []huh.Option[string] {
	kinds := readme.Kinds()
	opts := make([]huh.Option[string], len(kinds))
	for i, k := range kinds {
		opts[i] = huh.NewOption(k.Title(), string(k))
	}
	return opts
}
