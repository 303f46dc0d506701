package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/litholog/internal/core/domain"
)

// Table is a raw input table as read from a file.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
}

// minColumnWidth keeps narrow columns readable.
const minColumnWidth = 8

// chromeHeight is the number of lines used by the title, table header
// and status bar.
const chromeHeight = 6

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar
	table  table.Model

	// input is the table completion runs on.
	input Table

	// dataset is the last completed result.
	dataset *domain.AnnotatedDataset

	// allColumns shows every column instead of the display columns.
	allColumns bool

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a viewer that completes input through the given ports.
func NewApp(ports *Ports, input Table) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if len(input.Header) == 0 {
		return nil, fmt.Errorf("creating app: %w", ErrNoTable)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	t := table.New(table.WithFocused(true), table.WithHeight(10))
	t.SetStyles(table.Styles{
		Header:   s.TableHeader,
		Cell:     s.TableCell,
		Selected: s.TableSelected,
	})

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		status:      status.NewBar(s, km),
		table:       t,
		input:       input,
		currentView: messages.ViewTable,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts completion of the input table.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("litholog - "+a.input.Source),
		a.complete(),
	)
}

// complete returns a command that runs the engine on the input table.
func (a *App) complete() tea.Cmd {
	a.status.SetState(status.StateProcessing)
	ctx := a.ctx
	svc := a.ports.Completion
	in := a.input
	return func() tea.Msg {
		ds, err := svc.CompleteTable(ctx, in.Source, in.Header, in.Rows)
		return messages.CompletionFinished{Dataset: ds, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CompletionRequested:
		return a, a.complete()

	case messages.CompletionFinished:
		if msg.Err != nil {
			a.err = msg.Err
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.dataset = msg.Dataset
		a.status.SetState(status.StateReady)
		a.status.SetMessage("")
		a.status.SetDataset(msg.Dataset)
		a.refreshTable()
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHelp {
			a.status.SetState(status.StateHelp)
		} else {
			a.status.SetState(status.StateReady)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetState(status.StateError)
		if msg.Err != nil {
			a.status.SetMessage(msg.Err.Error())
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Help) || k == "esc" {
			return a.Update(messages.ViewChanged{View: messages.ViewTable})
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Help):
		return a.Update(messages.ViewChanged{View: messages.ViewHelp})
	case keymap.Matches(k, a.keymap.Columns):
		a.allColumns = !a.allColumns
		a.refreshTable()
		return a, nil
	case keymap.Matches(k, a.keymap.Reload):
		return a, a.complete()
	case keymap.Matches(k, a.keymap.Top):
		a.table.GotoTop()
	case keymap.Matches(k, a.keymap.Bottom):
		a.table.GotoBottom()
	default:
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		a.status.SetCursor(a.table.Cursor())
		return a, cmd
	}

	a.status.SetCursor(a.table.Cursor())
	return a, nil
}

// refreshTable rebuilds columns and rows from the current dataset.
func (a *App) refreshTable() {
	if a.dataset == nil {
		return
	}
	cols := a.Columns()

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = max(minColumnWidth, lipgloss.Width(c))
	}
	rows := make([]table.Row, a.dataset.Len())
	for i := range rows {
		row := a.dataset.Row(i, cols)
		for j, v := range row {
			widths[j] = max(widths[j], lipgloss.Width(v))
		}
		rows[i] = row
	}

	columns := make([]table.Column, len(cols))
	for i, c := range cols {
		columns[i] = table.Column{Title: c, Width: widths[i]}
	}

	// Rows must match the column count whenever the table renders.
	a.table.SetRows(nil)
	a.table.SetColumns(columns)
	a.table.SetRows(rows)
	a.table.GotoTop()
	a.status.SetCursor(a.table.Cursor())
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("litholog"))
	b.WriteString(" ")
	b.WriteString(a.styles.Muted.Render(a.input.Source))
	b.WriteString("\n\n")

	switch {
	case a.currentView == messages.ViewHelp:
		b.WriteString(a.renderHelp())
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	case a.dataset == nil:
		b.WriteString(a.styles.Muted.Render("Completing log..."))
		b.WriteString("\n")
	default:
		b.WriteString(a.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Keys"))
	b.WriteString("\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-8s %s\n", h.Key, a.styles.Help.Render(h.Desc))
		}
	}
	return b.String()
}

// SetDimensions resizes the app and its components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.status.SetWidth(width)
	if h := height - chromeHeight; h > 0 {
		a.table.SetHeight(h)
	}
	a.table.SetWidth(width)
}

// Columns returns the columns currently shown.
func (a *App) Columns() []string {
	if a.dataset == nil {
		return nil
	}
	if a.allColumns {
		return a.dataset.AllColumns
	}
	return a.dataset.DisplayColumns
}

// Dataset returns the last completed dataset.
func (a *App) Dataset() *domain.AnnotatedDataset {
	return a.dataset
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Cursor returns the highlighted row.
func (a *App) Cursor() int {
	return a.table.Cursor()
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, ports *Ports, input Table) error {
	app, err := NewApp(ports, input)
	if err != nil {
		return err
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
