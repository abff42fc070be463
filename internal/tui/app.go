// Package tui provides the interactive Bubble Tea dashboard for credsim.
package tui

import (
	"strings"
	"time"

	"credsim/internal/catalog"
	"credsim/internal/config"
	"credsim/internal/engine"
	"credsim/internal/model"
	"credsim/internal/snapshot"
	"credsim/internal/store"
	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the store read finishes.
type DataLoadedMsg struct {
	Snap    *model.CreditSnapshot
	Records []store.CardRecord
	Err     error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string

	// Data
	cfg     config.Config
	catalog *catalog.Catalog
	snap    *model.CreditSnapshot
	records []store.CardRecord
	loaded  bool
	loadErr error

	// Engine outputs for the current inputs
	scoreSim model.ScoreSimulation
	plan     model.BurnDownSchedule
	gate     engine.MigrationGate
	match    *engine.MigrationMatch

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	lab    labState
	burn   burnState
	offers offersState
	act    actionState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model reading from the given database path.
func NewApp(dbPath string) App {
	cfg, _ := config.Load()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	disabled, extra := config.CatalogOverrides(cfg)

	return App{
		dbPath:  dbPath,
		cfg:     cfg,
		catalog: catalog.Load(catalog.Overrides{Disabled: disabled, ExtraCards: extra}),
		lab:     newLabState(),
		burn:    newBurnState(cfg),
		offers:  newOffersState(cfg),
		act:     newActionState(),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	)
}

// loadDataCmd reads cards and score from the store in the background.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer st.Close()

		records, err := st.ListCards()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		if len(records) == 0 {
			return DataLoadedMsg{} // nil snap triggers first-run setup
		}

		score, scoreAt, ok, err := st.GetScore()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		if !ok {
			score, scoreAt = 680, time.Now()
		}

		return DataLoadedMsg{
			Snap:    snapshot.Build(records, score, scoreAt),
			Records: records,
		}
	}
}

// recompute runs the engine against the current snapshot and tab inputs.
func (a *App) recompute() {
	if a.snap == nil {
		return
	}

	a.scoreSim = engine.SimulateScore(a.snap.Score.Value, model.ScoreInputs{
		UtilizationPercent: a.lab.utilPct,
		OnTimeStreakMonths: a.lab.streak,
		RecentInquiries:    a.lab.inquiries,
	})

	payment := a.burn.payment
	if payment <= 0 {
		payment = engine.OptimalPayment(a.snap.Utilization.TotalBalance, 24, a.burn.strategy)
		a.burn.payment = payment
	}
	a.plan = engine.CalculateBurnDown(a.snap, payment, a.burn.strategy)

	a.gate = engine.ShouldConsiderMigration(a.snap)
	a.match = engine.BestMigrationCard(
		a.catalog.Cards(),
		a.snap.Utilization.TotalBalance,
		config.AssumedAPR(a.cfg),
		a.offers.strategy,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.needSetup {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.snap = msg.Snap
		a.records = msg.Records

		if msg.Err == nil && msg.Snap == nil {
			// Empty store: walk through first-run setup.
			a.needSetup = true
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		a.seedInputs()
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// seedInputs primes the score lab from the freshly loaded snapshot.
func (a *App) seedInputs() {
	if a.snap == nil {
		return
	}
	a.lab.utilPct = a.snap.Utilization.CurrentUtilization * 100
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Actions tab text inputs intercept keys while editing
	if a.activeTab == 4 && a.act.editing {
		return a.updateActionInput(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Reload from the store
	if key == "r" {
		a.loaded = false
		return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
	}

	// Tab navigation
	switch key {
	case "o", "s", "b", "f", "a":
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if a.snap == nil {
		return a, nil
	}

	// Per-tab keybindings
	switch a.activeTab {
	case 1:
		return a.updateLab(key)
	case 2:
		return a.updateBurn(key)
	case 3:
		return a.updateOffers(key)
	case 4:
		return a.updateActions(key)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.setupForm = nil
		a.needSetup = false
		a.loaded = false
		return a, tea.Batch(saveSetupCmd(a.dbPath, a.setupVals), a.spinner.Tick)
	}

	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(
		"\n  Terminal too narrow.\n\n  credsim needs at least 80 columns.\n")

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ credsim"))
	b.WriteString(subtitleStyle.Render(" · Credit Trajectory Simulator"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading accounts..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	body := lipgloss.NewStyle().Foreground(t.Red).Render("Could not read the account store") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(a.loadErr.Error()) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("Press r to retry, q to quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body), lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	write := func(b *strings.Builder, key, desc string) {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(padRight(key, 10)))
		b.WriteString("  ")
		b.WriteString(descStyle.Render(desc))
		b.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	write(&b, "o s b f a", "Jump to tab")
	write(&b, "← →", "Previous / Next tab")
	write(&b, "j k", "Move between fields")
	write(&b, "h l", "Adjust the focused value")

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	write(&b, "Enter", "Edit / Run")
	write(&b, "Esc", "Cancel editing")
	write(&b, "1 2 3", "Payoff pacing (Burn-Down tab)")
	write(&b, "c", "Cycle offer strategy (Offers tab)")
	write(&b, "r", "Reload from the store")
	write(&b, "q", "Quit")

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()), lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	rating := ""
	score := 0
	if a.snap != nil {
		score = a.snap.Score.Value
		rating = scoreRating(score)
	}
	statusBar := components.RenderStatusBar(w, score, rating)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderLabTab(cw)
	case 2:
		content = a.renderBurnTab(cw, contentH)
	case 3:
		content = a.renderOffersTab(cw)
	case 4:
		content = a.renderActionsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func scoreRating(score int) string {
	switch {
	case score >= 800:
		return "exceptional"
	case score >= 740:
		return "very good"
	case score >= 670:
		return "good"
	case score >= 580:
		return "fair"
	default:
		return "poor"
	}
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator between tabs
	}
	return -1
}
