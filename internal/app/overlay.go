package app

import (
	"context"
	"fmt"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	display "github.com/inference-gateway/cheat/internal/display"
	domain "github.com/inference-gateway/cheat/internal/domain"
	logger "github.com/inference-gateway/cheat/internal/logger"
	components "github.com/inference-gateway/cheat/internal/ui/components"
	styles "github.com/inference-gateway/cheat/internal/ui/styles"
	zap "go.uber.org/zap"
)

const (
	// DefaultWidthPercent is the share of the terminal the panel covers
	DefaultWidthPercent = 90
	overlayTitle        = "Keyboard Shortcuts"
	minPanelWidth       = 24
	minPanelHeight      = 10
)

// Options configures an OverlayApplication
type Options struct {
	Placeholder  string
	WidthPercent int
	ShowHelp     bool
	Focus        display.FocusStrategy
}

// focusResultMsg reports the outcome of the focus strategy
type focusResultMsg struct {
	strategy string
	err      error
}

// OverlayApplication is the single overlay window: a search bar above the
// filterable shortcut list. It lives from program start until dismissal.
type OverlayApplication struct {
	ctx           context.Context
	styleProvider *styles.Provider
	focus         display.FocusStrategy
	keys          KeyMap

	searchBar *components.SearchBar
	listView  *components.ShortcutListView
	helpBar   *components.HelpBar

	widthPercent int
	width        int
	height       int
	focusRan     bool
	dismissed    bool
}

// NewOverlayApplication creates the overlay for list
func NewOverlayApplication(ctx context.Context, list domain.ShortcutList, styleProvider *styles.Provider, opts Options) *OverlayApplication {
	if ctx == nil {
		ctx = context.Background()
	}

	focus := opts.Focus
	if focus == nil {
		focus = display.NoopFocus{}
	}

	widthPercent := opts.WidthPercent
	if widthPercent <= 0 || widthPercent > 100 {
		widthPercent = DefaultWidthPercent
	}

	keys := DefaultKeyMap()
	helpBar := components.NewHelpBar(keys, styleProvider)
	helpBar.SetEnabled(opts.ShowHelp)

	app := &OverlayApplication{
		ctx:           logger.Named(ctx, "overlay"),
		styleProvider: styleProvider,
		focus:         focus,
		keys:          keys,
		searchBar:     components.NewSearchBar(opts.Placeholder, styleProvider),
		listView:      components.NewShortcutListView(list, styleProvider),
		helpBar:       helpBar,
		widthPercent:  widthPercent,
		width:         80,
		height:        24,
	}
	app.layout()

	return app
}

// Init focuses the search bar and runs the focus strategy once
func (app *OverlayApplication) Init() tea.Cmd {
	return tea.Batch(app.searchBar.Focus(), app.focusCmd())
}

func (app *OverlayApplication) focusCmd() tea.Cmd {
	if app.focusRan {
		return nil
	}
	app.focusRan = true

	ctx := app.ctx
	strategy := app.focus
	return func() tea.Msg {
		return focusResultMsg{strategy: strategy.Name(), err: strategy.Focus(ctx)}
	}
}

// Update routes messages to the search bar and the list
func (app *OverlayApplication) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.handleResize(msg)
		return app, nil

	case focusResultMsg:
		app.handleFocusResult(msg)
		return app, nil

	case tea.KeyMsg:
		return app, app.handleKey(msg)
	}

	// cursor blink and other widget messages
	_, searchCmd := app.searchBar.Update(msg)
	return app, tea.Batch(searchCmd, app.listView.Update(msg))
}

func (app *OverlayApplication) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, app.keys.Dismiss):
		app.dismissed = true
		logger.L(app.ctx).Debug("Overlay dismissed", zap.String("key", msg.String()))
		return tea.Quit

	case app.keys.isScroll(msg):
		return app.listView.Update(msg)
	}

	changed, cmd := app.searchBar.Update(msg)
	if changed {
		app.listView.SetQuery(app.searchBar.Value())
		logger.L(app.ctx).Debug("Query changed",
			zap.String("query", app.listView.Query()),
			zap.Int("visible", app.listView.Len()))
	}
	return cmd
}

func (app *OverlayApplication) handleFocusResult(msg focusResultMsg) {
	if msg.err != nil {
		logger.L(app.ctx).Warn("Failed to focus overlay window",
			zap.String("strategy", msg.strategy),
			zap.Error(msg.err))
		return
	}
	logger.L(app.ctx).Debug("Focus strategy applied", zap.String("strategy", msg.strategy))
}

func (app *OverlayApplication) handleResize(msg tea.WindowSizeMsg) {
	app.width = msg.Width
	app.height = msg.Height
	app.layout()
}

// panelSize returns the outer size of the panel
func (app *OverlayApplication) panelSize() (int, int) {
	w := max(app.width*app.widthPercent/100, min(minPanelWidth, app.width))
	h := max(app.height*app.widthPercent/100, min(minPanelHeight, app.height))
	return w, h
}

// layout sizes the widgets to fit inside the panel
func (app *OverlayApplication) layout() {
	panelWidth, panelHeight := app.panelSize()

	// rounded border plus horizontal padding
	innerWidth := max(panelWidth-4, 1)
	innerHeight := max(panelHeight-2, 1)

	// title, search field, separator
	chrome := 1 + 3 + 1
	if app.helpBar.IsEnabled() {
		chrome++
	}

	app.searchBar.SetWidth(innerWidth)
	app.helpBar.SetWidth(innerWidth)
	app.listView.SetSize(innerWidth, max(innerHeight-chrome, 1))
}

// View renders the panel centered on the backdrop
func (app *OverlayApplication) View() string {
	if app.dismissed {
		return ""
	}

	panelWidth, panelHeight := app.panelSize()
	innerWidth := max(panelWidth-4, 1)

	sections := []string{
		app.renderTitle(),
		app.searchBar.View(),
		app.styleProvider.RenderSeparator(innerWidth),
		app.listView.View(),
	}
	if app.helpBar.IsEnabled() {
		sections = append(sections, app.helpBar.Render())
	}

	panel := app.styleProvider.RenderPanel(app.styleProvider.JoinVertical(sections...), panelWidth, panelHeight)
	return app.styleProvider.PlaceOnBackdrop(app.width, app.height, panel)
}

func (app *OverlayApplication) renderTitle() string {
	title := app.styleProvider.RenderTitle(overlayTitle)
	count := fmt.Sprintf("  %d/%d", app.listView.Len(), app.listView.Total())
	if app.listView.Len() == 0 && app.listView.Query() != "" {
		return title + app.styleProvider.RenderErrorText(count)
	}
	return title + app.styleProvider.RenderDimText(count)
}

// Query returns the current search text
func (app *OverlayApplication) Query() string {
	return app.searchBar.Value()
}

// ListView exposes the list view
func (app *OverlayApplication) ListView() *components.ShortcutListView {
	return app.listView
}

// Dismissed reports whether the dismiss key was pressed
func (app *OverlayApplication) Dismissed() bool {
	return app.dismissed
}

// Run presents the overlay in the alternate screen and blocks until it is dismissed
func Run(ctx context.Context, app *OverlayApplication, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(app, opts...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running overlay: %w", err)
	}
	return nil
}
