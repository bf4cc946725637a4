// This file implements the interactive terminal interface using bubbletea.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskman/cmd/taskman/ui"
	"taskman/internal/app"
	"taskman/internal/form"
	"taskman/internal/model"
	"taskman/internal/query"
	"taskman/internal/toast"
)

// focus zones, cycled with tab
const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusPriority
	focusSearch
	focusList
	focusZones
)

var priorityCycle = []model.Priority{"", model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

type (
	searchDebouncedMsg string
	toastsChangedMsg   struct{}
)

type tuiModel struct {
	app    *app.App
	styles ui.Styles
	theme  model.Theme

	draft     *form.Draft
	title     textinput.Model
	desc      textinput.Model
	due       textinput.Model
	priority  model.Priority
	editingID model.TaskID
	editing   bool

	search    textinput.Model
	debouncer *query.Debouncer
	searchCh  chan string
	toastCh   chan struct{}
	term      string
	filter    query.Filter

	zoneIdx       int
	cursor        int
	pendingDelete model.TaskID

	width  int
	height int
}

func newTUIModel(a *app.App, debounce time.Duration, toastCh chan struct{}) *tuiModel {
	theme := a.Theme()

	title := textinput.New()
	title.Placeholder = "Title *"
	title.CharLimit = 200
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 200

	due := textinput.New()
	due.Placeholder = "Due date (YYYY-MM-DD) *"
	due.CharLimit = 10

	search := textinput.New()
	search.Placeholder = "Search by title or description..."

	searchCh := make(chan string, 8)
	m := &tuiModel{
		app:       a,
		styles:    ui.NewStyles(ui.ThemeFor(theme)),
		theme:     theme,
		draft:     form.NewDraft(),
		title:     title,
		desc:      desc,
		due:       due,
		search:    search,
		searchCh:  searchCh,
		toastCh:   toastCh,
		filter:    query.FilterAll,
	}
	m.debouncer = query.NewDebouncer(debounce, func(v string) { searchCh <- v })
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenSearch(), m.listenToasts())
}

func (m *tuiModel) listenSearch() tea.Cmd {
	return func() tea.Msg { return searchDebouncedMsg(<-m.searchCh) }
}

func (m *tuiModel) listenToasts() tea.Cmd {
	return func() tea.Msg { <-m.toastCh; return toastsChangedMsg{} }
}

// deleteSelected opens the confirmation modal; the store's Delete runs
// only after the modal answers yes.
func (m *tuiModel) deleteSelected(id model.TaskID) {
	m.pendingDelete = id
}

func (m *tuiModel) visible() []model.Task {
	return query.Visible(m.app.Store.Tasks(), m.filter, m.term)
}

func (m *tuiModel) zone() int { return m.zoneIdx }

// setZone moves the focus, blurring the field being left so its
// validation error surfaces, the same contract as a form blur.
func (m *tuiModel) setZone(z int) {
	switch m.zoneIdx {
	case focusTitle:
		m.draft.Blur(form.FieldTitle)
	case focusDescription:
		m.draft.Blur(form.FieldDescription)
	case focusDueDate:
		m.draft.Blur(form.FieldDueDate)
	case focusPriority:
		m.draft.Blur(form.FieldPriority)
	}

	m.title.Blur()
	m.desc.Blur()
	m.due.Blur()
	m.search.Blur()

	m.zoneIdx = z
	switch z {
	case focusTitle:
		m.title.Focus()
	case focusDescription:
		m.desc.Focus()
	case focusDueDate:
		m.due.Focus()
	case focusSearch:
		m.search.Focus()
	}
}

func (m *tuiModel) cycleFocus(dir int) {
	next := (m.zoneIdx + dir + focusZones) % focusZones
	// The edit form only has title and description.
	if m.editing {
		for next == focusDueDate || next == focusPriority {
			next = (next + dir + focusZones) % focusZones
		}
	}
	m.setZone(next)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebouncedMsg:
		m.term = string(msg)
		m.cursor = 0
		return m, m.listenSearch()

	case toastsChangedMsg:
		return m, m.listenToasts()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInputs(msg)
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.debouncer.Stop()
		return m, tea.Quit
	}

	// Delete confirmation modal swallows every key.
	if m.pendingDelete != "" {
		switch msg.String() {
		case "y", "Y":
			id := m.pendingDelete
			m.pendingDelete = ""
			m.app.Store.Delete(id)
			m.clampCursor()
		case "n", "N", "esc":
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	zone := m.zone()
	switch zone {
	case focusTitle, focusDescription, focusDueDate:
		if msg.Type == tea.KeyEnter {
			m.submitForm()
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.editing {
			m.cancelEdit()
			return m, nil
		}
		return m.updateInputs(msg)

	case focusPriority:
		switch msg.String() {
		case "left", "h":
			m.cyclePriority(-1)
		case "right", "l", " ":
			m.cyclePriority(1)
		case "enter":
			m.submitForm()
		case "esc":
			if m.editing {
				m.cancelEdit()
			}
		}
		return m, nil

	case focusSearch:
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
			m.debouncer.Set("")
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.debouncer.Set(m.search.Value())
		return m, cmd
	}

	// List zone
	visible := m.visible()
	switch msg.String() {
	case "q":
		m.debouncer.Stop()
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "1":
		m.filter = query.FilterAll
		m.cursor = 0
	case "2":
		m.filter = query.FilterActive
		m.cursor = 0
	case "3":
		m.filter = query.FilterCompleted
		m.cursor = 0
	case " ", "enter":
		if t, ok := m.selected(visible); ok {
			next := model.StatusCompleted
			if t.Done() {
				next = model.StatusPending
			}
			m.app.Store.SetStatus(t.ID, next)
		}
	case "d":
		if t, ok := m.selected(visible); ok {
			m.deleteSelected(t.ID)
		}
	case "e":
		if t, ok := m.selected(visible); ok {
			m.startEdit(t)
		}
	case "t":
		m.theme = m.theme.Toggle()
		m.app.SetTheme(m.theme)
		m.styles = ui.NewStyles(ui.ThemeFor(m.theme))
	case "u":
		m.undoLatest()
	case "x":
		if toasts := m.app.Toasts.Toasts(); len(toasts) > 0 {
			m.app.Toasts.Dismiss(toasts[0].ID)
		}
	}
	return m, nil
}

func (m *tuiModel) selected(visible []model.Task) (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *tuiModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) undoLatest() {
	toasts := m.app.Toasts.Toasts()
	for i := len(toasts) - 1; i >= 0; i-- {
		if toasts[i].OnUndo != nil && !toasts[i].Exiting {
			m.app.Toasts.Undo(toasts[i].ID)
			return
		}
	}
}

func (m *tuiModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.title, cmd = m.title.Update(msg)
	cmds = append(cmds, cmd)
	m.desc, cmd = m.desc.Update(msg)
	cmds = append(cmds, cmd)
	m.due, cmd = m.due.Update(msg)
	cmds = append(cmds, cmd)

	// Live per-field validation on every change.
	m.draft.SetField(form.FieldTitle, m.title.Value())
	m.draft.SetField(form.FieldDescription, m.desc.Value())
	m.draft.SetField(form.FieldDueDate, m.due.Value())
	m.draft.SetField(form.FieldPriority, string(m.priority))

	return m, tea.Batch(cmds...)
}

func (m *tuiModel) cyclePriority(dir int) {
	idx := 0
	for i, p := range priorityCycle {
		if p == m.priority {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(priorityCycle)) % len(priorityCycle)
	m.priority = priorityCycle[idx]
	m.draft.SetField(form.FieldPriority, string(m.priority))
}

func (m *tuiModel) submitForm() {
	if m.editing {
		if !m.app.Store.Edit(m.editingID, m.title.Value(), m.desc.Value()) {
			// Rejected edit keeps the form open with the errors shown.
			m.draft.Blur(form.FieldTitle)
			m.draft.Blur(form.FieldDescription)
			return
		}
		m.cancelEdit()
		return
	}

	m.draft.SetField(form.FieldTitle, m.title.Value())
	m.draft.SetField(form.FieldDescription, m.desc.Value())
	m.draft.SetField(form.FieldDueDate, m.due.Value())
	m.draft.SetField(form.FieldPriority, string(m.priority))

	p, ok := m.draft.Submit()
	if !ok {
		return
	}
	m.app.Store.Create(p)
	m.title.SetValue("")
	m.desc.SetValue("")
	m.due.SetValue("")
	m.priority = ""
}

func (m *tuiModel) startEdit(t model.Task) {
	m.editing = true
	m.editingID = t.ID
	m.title.SetValue(t.Title)
	m.desc.SetValue(t.Description)
	m.setZone(focusTitle)
}

func (m *tuiModel) cancelEdit() {
	m.editing = false
	m.editingID = ""
	m.title.SetValue("")
	m.desc.SetValue("")
	m.draft.Reset()
}

func (m *tuiModel) View() string {
	var b strings.Builder

	header := "My Tasks"
	if m.editing {
		header = "My Tasks - editing"
	}
	mode := "light"
	if m.theme == model.ThemeDark {
		mode = "dark"
	}
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString(m.styles.Help.Render(fmt.Sprintf("  [%s]", mode)))
	b.WriteString("\n\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderToasts())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"tab focus · enter add/toggle · e edit · d delete · u undo · t theme · 1/2/3 filter · q quit"))

	if m.pendingDelete != "" {
		modal := m.styles.Confirm.Render("Are you sure you want to delete this task?\n\n[y] delete   [n] keep")
		return lipgloss.JoinVertical(lipgloss.Left, b.String(), modal)
	}
	return b.String()
}

func (m *tuiModel) renderForm() string {
	var b strings.Builder

	row := func(field form.Field, view string) {
		b.WriteString(view)
		if msg := m.draft.VisibleError(field); msg != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.FieldError.Render(msg))
		}
		b.WriteString("\n")
	}

	row(form.FieldTitle, m.title.View())
	row(form.FieldDescription, m.desc.View())
	if !m.editing {
		row(form.FieldDueDate, m.due.View())

		label := "(none)"
		if m.priority != "" {
			label = string(m.priority)
		}
		sel := fmt.Sprintf("Priority: < %s >", label)
		if m.zone() == focusPriority {
			sel = m.styles.Selected.Render(sel)
		} else {
			sel = m.styles.Label.Render(sel)
		}
		row(form.FieldPriority, sel)
	}
	return b.String()
}

func (m *tuiModel) renderTabs() string {
	labels := map[query.Filter]string{
		query.FilterAll:       "All",
		query.FilterActive:    "Active",
		query.FilterCompleted: "Completed",
	}
	parts := make([]string, 0, len(query.Filters))
	for _, f := range query.Filters {
		style := m.styles.TabInactive
		if f == m.filter {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(labels[f]))
	}
	return strings.Join(parts, " ")
}

func (m *tuiModel) renderSearch() string {
	return m.search.View()
}

func (m *tuiModel) renderList() string {
	visible := m.visible()
	if len(visible) == 0 {
		if m.app.Store.Len() == 0 {
			return m.styles.TaskMeta.Render("No tasks yet. Create the first one with the form above.")
		}
		return m.styles.TaskMeta.Render("No tasks match the current filter.")
	}

	now := time.Now()
	var b strings.Builder
	for i, t := range visible {
		prefix := "  "
		if i == m.cursor && m.zone() == focusList {
			prefix = m.styles.Selected.Render("> ")
		}

		check := "[ ]"
		titleStyle := m.styles.TaskTitle
		if t.Done() {
			check = "[x]"
			titleStyle = m.styles.TaskDone
		}

		line := fmt.Sprintf("%s%s %s", prefix, check, titleStyle.Render(t.Title))
		b.WriteString(line)

		meta := make([]string, 0, 3)
		if label := model.FormatDueDate(t.DueDate, now); label != "" {
			if model.IsOverdue(t.DueDate, now) && !t.Done() {
				meta = append(meta, m.styles.TaskOverdue.Render(label))
			} else {
				meta = append(meta, label)
			}
		}
		if t.Priority != "" {
			pStyle := m.styles.PriorityLow
			switch t.Priority {
			case model.PriorityHigh:
				pStyle = m.styles.PriorityHigh
			case model.PriorityMedium:
				pStyle = m.styles.PriorityMed
			}
			meta = append(meta, pStyle.Render(string(t.Priority)))
		}
		if t.Description != "" {
			meta = append(meta, t.Description)
		}
		b.WriteString(m.styles.TaskMeta.Render("  " + strings.Join(meta, " · ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *tuiModel) renderToasts() string {
	toasts := m.app.Toasts.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, t := range toasts {
		style := m.styles.ToastInfo
		switch t.Type {
		case toast.TypeSuccess:
			style = m.styles.ToastSuccess
		case toast.TypeError:
			style = m.styles.ToastError
		}

		body := fmt.Sprintf("%s: %s", t.Title, t.Message)
		if t.OnUndo != nil && !t.Exiting {
			body += "  [u: undo]"
		}
		if t.Exiting {
			b.WriteString(m.styles.ToastExiting.Render(body))
		} else {
			b.WriteString(style.Render(body))
		}
		b.WriteString("\n")
	}
	return b.String()
}
