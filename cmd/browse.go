package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/instanimals/instanimals-cli/internal/adapters/render/appview"
	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/navigation"
)

func newBrowseCmd(app *app) *cobra.Command {
	var startPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive Instanimals client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			program := tea.NewProgram(
				newBrowseModel(app, startPath),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&startPath, "path", "/", "Starting view path (e.g. /adopt, /messages)")

	return cmd
}

type inputMode int

const (
	modeNav inputMode = iota
	modeAuthEmail
	modeAuthPassword
	modeAuthUsername
	modeCompose
	modeSearch
	modeShelter
	modeChat
	modeEditName
	modeEditBio
)

type (
	animalsLoadedMsg  struct{}
	shelterDoneMsg    struct{ err error }
	authDoneMsg       struct{ err error }
)

type browseModel struct {
	app    *app
	nav    *navigation.Controller
	engine *appview.Engine

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	mode     inputMode
	authMode application.AuthMode
	email    string
	password string
	editName string

	status string
	width  int
	height int
	ready  bool
}

func newBrowseModel(app *app, startPath string) browseModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	vp := viewport.New(80, 20)

	return browseModel{
		app:      app,
		nav:      navigation.NewController(app.session, startPath),
		engine:   appview.NewEngine(app.session, app.cache, nil),
		viewport: vp,
		input:    ti,
		spinner:  sp,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.maybeLoadAnimals())
}

// maybeLoadAnimals starts the one-shot background animal fetch the first time
// the logged-in explore view renders.
func (m browseModel) maybeLoadAnimals() tea.Cmd {
	if !m.app.session.LoggedIn || m.app.session.ActiveTab != domain.TabExplore {
		return nil
	}
	if !m.app.cache.MarkAnimalFetchStarted() {
		return nil
	}

	return func() tea.Msg {
		m.app.feed.LoadAnimals(context.Background())
		return animalsLoadedMsg{}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.input.Width = msg.Width - 4
		m.ready = true
		return m.refresh(), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case animalsLoadedMsg:
		return m.refresh(), nil

	case shelterDoneMsg:
		// Status line already carries the outcome; failures keep results.
		if msg.err != nil {
			m.app.logger.Debug("shelter search", zap.Error(msg.err))
		}
		return m.refresh(), nil

	case authDoneMsg:
		if msg.err != nil {
			m.status = m.app.auth.LastError
		} else {
			m.status = fmt.Sprintf("Welcome, %s!", m.app.session.Profile.DisplayName)
		}
		return m.refresh(), m.maybeLoadAnimals()

	case tea.KeyMsg:
		if m.mode == modeNav {
			return m.updateNav(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browseModel) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6", "7":
		tabs := []domain.Tab{
			domain.TabExplore, domain.TabAdopt, domain.TabSearch,
			domain.TabNotifications, domain.TabFriends, domain.TabProfile,
			domain.TabEditProfile,
		}
		m.nav.SwitchTab(tabs[int(msg.String()[0]-'1')], true)
		m.viewport.GotoTop()
		m.status = ""
		return m.refresh(), m.maybeLoadAnimals()

	case "b", "esc", "backspace":
		m.nav.Back()
		m.viewport.GotoTop()
		return m.refresh(), nil

	case "f":
		m.nav.Forward()
		m.viewport.GotoTop()
		return m.refresh(), nil

	case "l":
		if !m.app.session.LoggedIn {
			return m.startAuth(application.ModeLogin), nil
		}

	case "s":
		if !m.app.session.LoggedIn {
			return m.startAuth(application.ModeSignup), nil
		}

	case "L":
		if m.app.session.LoggedIn {
			if err := m.app.feed.Logout(context.Background()); err != nil {
				m.app.logger.Warn("logout", zap.Error(err))
			}
			m.nav.SwitchTab(domain.TabExplore, true)
			m.status = "Signed out."
			return m.refresh(), nil
		}

	case "/":
		if m.app.session.LoggedIn {
			m.nav.SwitchTab(domain.TabSearch, true)
			return m.startInput(modeSearch, "Search...", m.app.cache.SearchQuery), nil
		}

	case "c":
		if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabExplore {
			return m.startInput(modeCompose, "Share a moment...", ""), nil
		}

	case "g":
		if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabAdopt {
			return m.startInput(modeShelter, "City, ZIP, or address", m.app.cache.ShelterLocation), nil
		}

	case "o":
		if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabFriends && !m.app.session.ChatOpen() {
			if len(m.app.cache.Contacts) > 0 {
				if err := m.app.chat.Open(m.app.cache.Contacts[0].ID); err == nil {
					return m.startInput(modeChat, "Type a message...", ""), nil
				}
			}
		}
		if m.app.session.ChatOpen() {
			return m.startInput(modeChat, "Type a message...", ""), nil
		}

	case "x":
		if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabExplore {
			m.status = "Post shared!"
			return m.refresh(), nil
		}

	case "e":
		if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabProfile {
			m.nav.SwitchTab(domain.TabEditProfile, true)
			return m.startInput(modeEditName, "Display name", m.app.session.Profile.DisplayName), nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browseModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m.stopInput(), nil

	case "enter":
		return m.commitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Live filter: every keystroke narrows the result list.
	if m.mode == modeSearch {
		m.app.cache.SearchQuery = m.input.Value()
		return m.refresh(), cmd
	}

	return m, cmd
}

func (m browseModel) commitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.mode {
	case modeAuthEmail:
		m.email = value
		return m.startInput(modeAuthPassword, "Password", ""), nil

	case modeAuthPassword:
		m.password = value
		if m.authMode == application.ModeSignup {
			return m.startInput(modeAuthUsername, "Username (blank = email local part)", ""), nil
		}
		return m.submitAuth("")

	case modeAuthUsername:
		return m.submitAuth(value)

	case modeCompose:
		if _, err := m.app.feed.CreatePost(value); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Posted."
		}
		return m.stopInput(), nil

	case modeSearch:
		m.app.cache.SearchQuery = value
		return m.stopInput(), nil

	case modeShelter:
		m.mode = modeNav
		m.input.Blur()
		location := value
		return m.refresh(), func() tea.Msg {
			return shelterDoneMsg{err: m.app.shelters.Search(context.Background(), location)}
		}

	case modeChat:
		if err := m.app.chat.Send(value); err != nil {
			m.status = err.Error()
			return m.stopInput(), nil
		}
		m.input.SetValue("")
		refreshed := m.refresh()
		refreshed.viewport.GotoBottom()
		return refreshed, nil

	case modeEditName:
		m.editName = value
		return m.startInput(modeEditBio, "Bio", m.app.session.Profile.Bio), nil

	case modeEditBio:
		if err := m.app.auth.SaveProfileEdit(context.Background(), m.editName, value); err != nil {
			m.status = err.Error()
			return m.stopInput(), nil
		}
		m.status = "Profile saved."
		m.mode = modeNav
		m.input.Blur()
		m.nav.SwitchTab(domain.TabProfile, true)
		return m.refresh(), nil
	}

	return m.stopInput(), nil
}

func (m browseModel) startAuth(mode application.AuthMode) browseModel {
	m.authMode = mode
	return m.startInput(modeAuthEmail, "Email", "")
}

func (m browseModel) submitAuth(username string) (tea.Model, tea.Cmd) {
	email, password := m.email, m.password
	authMode := m.authMode

	m.mode = modeNav
	m.input.Blur()
	m.status = "Signing in..."

	return m.refresh(), func() tea.Msg {
		err := m.app.auth.Authenticate(context.Background(), authMode, email, password, username)
		return authDoneMsg{err: err}
	}
}

func (m browseModel) startInput(mode inputMode, placeholder, value string) browseModel {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m browseModel) stopInput() browseModel {
	m.mode = modeNav
	m.input.Blur()
	m.input.SetValue("")
	return m.refresh()
}

// refresh re-renders the whole content region from current state.
func (m browseModel) refresh() browseModel {
	m.viewport.SetContent(m.engine.View())
	return m
}

func (m browseModel) View() string {
	if !m.ready {
		return fmt.Sprintf("%s starting...", m.spinner.View())
	}

	sections := []string{m.viewport.View()}

	if m.app.session.LoggedIn && m.app.session.ActiveTab == domain.TabExplore && !m.app.cache.AnimalsLoaded {
		sections = append(sections, fmt.Sprintf("%s loading animals", m.spinner.View()))
	}

	if m.mode != modeNav {
		sections = append(sections, m.input.View())
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}

	sections = append(sections, m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m browseModel) helpLine() string {
	if m.mode != modeNav {
		return "enter confirm · esc cancel"
	}
	if !m.app.session.LoggedIn {
		return "l login · s signup · q quit"
	}
	return "1-7 tabs · b back · f forward · / search · c compose · x share · g shelters · o chat · e edit · L logout · q quit"
}
