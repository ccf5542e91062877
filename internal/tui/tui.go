// Package tui is the interactive list mode: navigate with the arrow
// keys, space toggles done, d deletes (u undoes the last delete), a adds
// inline with pattern expansion, e edits inline, q quits and persists.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todopat/internal/model"
	"todopat/internal/todo"
	"todopat/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) titleText() string {
	box := ui.BoxUnchecked
	if i.item.Completed {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Text)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.titleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Text }

type modelTUI struct {
	list    list.Model
	expand  func(string) string
	changed bool

	width  int
	height int

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // shared text input model (used for add & edit)
	addErr string          // last add validation error (shown briefly)

	// Inline edit
	editing   bool // true when inline edit is active
	editIndex int  // index of item being edited
	editErr   string

	// Undo support (single-level, in-memory only)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	text := it.item.Text
	if it.item.Completed {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the Bubble Tea list over the store's items and persists
// changes when quitting. New titles typed inline go through the same
// pattern expansion as `todo add`.
func Run(store *todo.Store, expander todo.Expander) error {
	items := store.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)

	// Header title with live counts
	done, pending := store.Stats()
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Todos"),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), pending,
		ui.AccentStyle.Render("Total"), store.Len(),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with Add / Edit / Undo bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }

	m := modelTUI{
		list:   l,
		width:  80,
		height: 24,
	}
	// set up text input for inline add/edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item text..."
	m.ti.CharLimit = 200
	m.expand = expanderFunc(expander)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, okModel := finalModel.(modelTUI)
	if !okModel || !fm.changed {
		return nil
	}

	// Write back list state and persist
	out := make([]model.Item, 0, len(fm.list.Items()))
	for _, it := range fm.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.item)
		}
	}
	return store.ReplaceAll(out)
}

func expanderFunc(e todo.Expander) func(string) string {
	return func(text string) string {
		if e == nil {
			return text
		}
		expanded, _ := e.Expand(text)
		return expanded
	}
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.addErr = "Text cannot be empty"
					return m, nil
				}
				now := time.Now()
				item := model.Item{Text: m.expand(text), CreatedAt: &now}
				m.list.InsertItem(m.list.Index()+1, listItem{item: item})
				m.changed = true
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.editErr = "Text cannot be empty"
					return m, nil
				}
				if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
					if li, ok := m.list.Items()[m.editIndex].(listItem); ok {
						li.item.Text = text
						m.list.SetItem(m.editIndex, li)
						m.changed = true
					}
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.item.Completed = !li.item.Completed
					if li.item.Completed {
						now := time.Now()
						li.item.CompletedAt = &now
					} else {
						li.item.CompletedAt = nil
					}
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New item text..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.editing = true
					m.editIndex = i
					m.ti.SetValue(li.item.Text)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit item text..."
					m.ti.Focus()
					return m, nil
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.addErr != "" && m.adding {
			title += " — " + ui.ErrorStyle.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " — " + ui.ErrorStyle.Render(m.editErr)
		}
		content = content + "\n" + ui.Panel([]string{title, m.ti.View()})
	}
	return ui.Panel([]string{content})
}
