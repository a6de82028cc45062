package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr        screen
	menu       list.Model
	spin       spinner.Model
	activeName string
	running    bool
	toast      string

	result string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Pages", "List registered content pages"},
		menuItem{"Build", "Render every page to static HTML"},
		menuItem{"Check Links", "Verify fragment, site, and external links"},
		menuItem{"Verify Samples", "Check published code samples against their contracts"},
		menuItem{"Init Workspace", "Scaffold docsite.yaml, dist/, .docsite/ here"},
		menuItem{"Quit", "Exit"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "MCP Aegis docsite"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		spin:  sp,
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.err != nil && msg.found {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace ready at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case pagesLoadedMsg:
		m.running = false
		m.scr = screenResult
		m.result = renderPageRefs(msg.refs)
		return m, nil

	case buildDoneMsg:
		m.running = false
		m.scr = screenResult
		if msg.err != nil {
			m.result = m.theme.Bad.Render(userMessage(msg.err))
			return m, nil
		}
		m.result = renderBuildReport(msg.report)
		return m, nil

	case checkDoneMsg:
		m.running = false
		m.scr = screenResult
		if msg.err != nil {
			m.result = m.theme.Bad.Render(userMessage(msg.err))
			return m, nil
		}
		m.result = renderLinkReport(m.theme, msg.report, msg.id)
		return m, nil

	case verifyDoneMsg:
		m.running = false
		m.scr = screenResult
		m.result = renderSampleResults(m.theme, msg.results)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			m.activeName = ""
			m.result = ""
			return m, nil

		case "enter":
			if m.scr == screenHome && !m.running {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.selectItem(it)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				m.activeName = ""
				m.result = ""
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) selectItem(it menuItem) (tea.Model, tea.Cmd) {
	m.activeName = it.title
	m.toast = ""

	switch {
	case strings.EqualFold(it.title, "Quit"):
		return m, tea.Quit

	case strings.EqualFold(it.title, "Pages"):
		m.running = true
		return m, tea.Batch(m.spin.Tick, cmdListPages())

	case strings.EqualFold(it.title, "Init Workspace"):
		root := m.workspaceRoot
		if root == "" {
			root = "."
		}
		m.running = true
		return m, tea.Batch(m.spin.Tick, cmdInitWorkspaceHere(m.deps, root))

	case strings.EqualFold(it.title, "Verify Samples"):
		m.running = true
		return m, tea.Batch(m.spin.Tick, cmdVerifySamples(m.deps))

	case strings.EqualFold(it.title, "Build"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Run Init Workspace first."
			return m, nil
		}
		m.running = true
		return m, tea.Batch(m.spin.Tick, cmdBuildSite(m.deps, m.workspaceRoot))

	case strings.EqualFold(it.title, "Check Links"):
		if !m.workspaceFound {
			m.toast = "No workspace found. Run Init Workspace first."
			return m, nil
		}
		m.running = true
		return m, tea.Batch(m.spin.Tick, cmdCheckLinks(m.deps, m.workspaceRoot))
	}

	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("MCP Aegis docsite") + "\n" +
		m.theme.Subtitle.Render("Build, check, and preview the documentation site") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nUse Init Workspace to create one here.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Help.Render(m.toast)
	}

	if m.running {
		card := m.theme.Card.Render(m.spin.View() + " " + m.activeName + "...")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenResult:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.activeName),
				m.result,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
