package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/balkashynov/taskdeck/internal/chart"
	"github.com/balkashynov/taskdeck/internal/query"
	"github.com/balkashynov/taskdeck/internal/stats"
	"github.com/balkashynov/taskdeck/internal/store"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusForm
	FocusConfirm
	FocusAlert
)

// viewState is the transient view parameters owned by the board
type viewState struct {
	filter     query.Filter
	search     string
	sort       query.Sort
	selectedID int64
	theme      ThemeName
}

// row is one rendered list entry. It only remembers the task id; the task
// itself is looked up when the row is drawn or acted on.
type row struct {
	id int64
}

// listKey identifies a computed list so unchanged inputs skip the query
type listKey struct {
	opts    query.Options
	version uint64
	day     string
}

// toastExpiredMsg hides the toast if no newer one was shown since
type toastExpiredMsg struct {
	seq int
}

// Options configures a Board
type Options struct {
	Theme         ThemeName
	ToastDuration time.Duration
	Now           func() time.Time
	Logger        *zap.SugaredLogger
	OpenForm      bool // start with the new-task form shown
}

// Board is the interactive task board
type Board struct {
	store *store.Store
	chart *chart.Adapter
	log   *zap.SugaredLogger
	now   func() time.Time

	state viewState
	focus Focus

	rows    []row
	cursor  int
	listKey listKey
	summary stats.Summary

	keys     KeyMap
	help     help.Model
	search   textinput.Model
	form     taskForm
	progress progress.Model

	confirmID     int64
	confirmChoice bool // true for Yes
	alert         string

	toast         string
	toastSeq      int
	toastDuration time.Duration

	width  int
	height int
	quit   bool
}

// NewBoard creates a board over a loaded store
func NewBoard(s *store.Store, c *chart.Adapter, opts Options) Board {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}
	if opts.Theme == "" {
		opts.Theme = ThemeLight
	}

	search := textinput.New()
	search.Placeholder = "Search title or category..."
	search.Prompt = "🔍 "
	search.CharLimit = 100

	m := Board{
		store: s,
		chart: c,
		log:   opts.Logger,
		now:   opts.Now,
		state: viewState{
			filter: query.FilterAll,
			sort:   query.SortNewest,
			theme:  opts.Theme,
		},
		focus:         FocusList,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		search:        search,
		form:          newTaskForm(),
		progress:      progress.New(progress.WithSolidFill(chart.ColorCompleted), progress.WithoutPercentage()),
		toastDuration: opts.ToastDuration,
	}
	if opts.OpenForm {
		m.focus = FocusForm
	}
	m.refreshAll()
	return m
}

// Init initializes the model
func (m Board) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		// Only the latest toast may clear itself
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		// Catch up with the calendar before acting on the key
		m.refreshList()
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		switch m.focus {
		case FocusAlert:
			// Any key dismisses the alert and returns to the form
			m.alert = ""
			m.focus = FocusForm
			return m, nil
		case FocusConfirm:
			return m.handleConfirmKeys(msg)
		case FocusForm:
			return m.handleFormKeys(msg)
		case FocusSearch:
			return m.handleSearchKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}

	// Keep cursor blink and similar input messages flowing
	var cmd tea.Cmd
	switch m.focus {
	case FocusSearch:
		m.search, cmd = m.search.Update(msg)
	case FocusForm:
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

// handleListKeys handles key input while the list has focus
func (m Board) handleListKeys(msg tea.KeyMsg) (Board, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedRow(); ok {
			m.confirmID = id
			m.confirmChoice = false
			m.focus = FocusConfirm
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.focus = FocusForm
		return m, m.form.focus(m.form.focused)

	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.state.filter = pickFilter(msg.String(), m.state.filter)
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.state.sort = m.state.sort.Next()
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.state.theme = m.state.theme.Toggle()
		return m, nil

	case msg.String() == "esc":
		if m.state.search != "" {
			m.search.SetValue("")
			m.state.search = ""
			m.refreshList()
		}
		return m, nil
	}
	return m, nil
}

// pickFilter maps a filter-chip key to its filter; other keys cycle
func pickFilter(k string, current query.Filter) query.Filter {
	filters := query.Filters()
	switch k {
	case "1", "2", "3", "4":
		return filters[int(k[0]-'1')]
	}
	return current.Next()
}

// handleSearchKeys updates the search term live on every keystroke
func (m Board) handleSearchKeys(msg tea.KeyMsg) (Board, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.state.search = ""
		m.focus = FocusList
		m.refreshList()
		return m, nil
	case "enter":
		m.search.Blur()
		m.focus = FocusList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.search {
		m.state.search = m.search.Value()
		m.refreshList()
	}
	return m, cmd
}

// handleFormKeys handles the new-task form
func (m Board) handleFormKeys(msg tea.KeyMsg) (Board, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.inputs[m.form.focused].Blur()
		m.focus = FocusList
		return m, nil
	case "ctrl+r":
		m.form.reset()
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm validates the form and delegates creation to the store
func (m Board) submitForm() (Board, tea.Cmd) {
	m.form.validationErr = ""

	in, err := m.form.input(m.now())
	if err != nil {
		m.form.validationErr = err.Error()
		return m, nil
	}

	task, err := m.store.Add(in)
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		m.alert = verr.Msg
		m.focus = FocusAlert
		return m, nil
	}

	m.form.reset()
	m.form.inputs[fieldTitle].Blur()
	m.focus = FocusList
	m.state.selectedID = task.ID
	m.refreshAll()

	if err != nil {
		return m.persistenceFailed(err)
	}
	return m.showToast("Task created!")
}

// toggleSelected flips the task under the cursor
func (m Board) toggleSelected() (Board, tea.Cmd) {
	id, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	_, err := m.store.ToggleCompleted(id)
	if errors.Is(err, store.ErrNotFound) {
		// Gone since the list was drawn
		m.refreshAll()
		return m, nil
	}
	m.refreshAll()
	if err != nil {
		return m.persistenceFailed(err)
	}
	return m, nil
}

// handleConfirmKeys handles the delete confirmation modal
func (m Board) handleConfirmKeys(msg tea.KeyMsg) (Board, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l":
		m.confirmChoice = !m.confirmChoice
		return m, nil
	case "y", "Y":
		m.confirmChoice = true
		return m.resolveConfirm()
	case "n", "N", "esc", "q":
		m.confirmChoice = false
		return m.resolveConfirm()
	case "enter":
		return m.resolveConfirm()
	}
	return m, nil
}

func (m Board) resolveConfirm() (Board, tea.Cmd) {
	id := m.confirmID
	m.confirmID = 0
	m.focus = FocusList
	if !m.confirmChoice {
		return m, nil
	}

	removed, err := m.store.Remove(id)
	m.refreshAll()
	if err != nil {
		return m.persistenceFailed(err)
	}
	if !removed {
		return m, nil
	}
	return m.showToast("Task deleted")
}

// showToast replaces the current notice and restarts its timer
func (m Board) showToast(text string) (Board, tea.Cmd) {
	m.toastSeq++
	m.toast = text
	seq := m.toastSeq
	return m, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m Board) persistenceFailed(err error) (Board, tea.Cmd) {
	m.log.Errorw("task change not saved", "error", err)
	cause := err
	var perr *store.PersistenceError
	if errors.As(err, &perr) {
		cause = perr.Err
	}
	return m.showToast(fmt.Sprintf("Could not save: %v", cause))
}

// refreshAll recomputes list, stats and chart after a mutation
func (m *Board) refreshAll() {
	m.refreshList()
	m.refreshStats()
}

func (m *Board) refreshStats() {
	m.summary = stats.Compute(m.store.Tasks(), m.now())
	if m.chart != nil {
		if err := m.chart.Update(m.summary.Completed, m.summary.Pending); err != nil {
			m.log.Warnw("chart update failed", "error", err)
		}
	}
}

// refreshList recomputes the visible rows when any query input changed.
// A new calendar day also refreshes the due-today counter.
func (m *Board) refreshList() {
	opts := m.queryOptions()
	k := listKey{opts: opts, version: m.store.Version(), day: m.now().Format("2006-01-02")}
	if k == m.listKey && m.rows != nil {
		return
	}
	dayChanged := m.rows != nil && k.day != m.listKey.day
	m.listKey = k
	if dayChanged {
		m.refreshStats()
	}

	tasks := query.Apply(m.store.Tasks(), opts, m.now())
	m.rows = make([]row, len(tasks))
	for i, t := range tasks {
		m.rows[i] = row{id: t.ID}
	}
	m.syncCursor()
}

func (m Board) queryOptions() query.Options {
	return query.Options{Filter: m.state.filter, Search: m.state.search, Sort: m.state.sort}
}

// syncCursor keeps the cursor on the selected task when it is still visible
func (m *Board) syncCursor() {
	for i, r := range m.rows {
		if r.id == m.state.selectedID {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.rows) > 0 {
		m.state.selectedID = m.rows[m.cursor].id
	} else {
		m.state.selectedID = 0
	}
}

func (m *Board) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.state.selectedID = m.rows[m.cursor].id
}

func (m Board) selectedRow() (int64, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return 0, false
	}
	return m.rows[m.cursor].id, true
}
