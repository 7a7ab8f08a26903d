// Package tui terminal client ของ Taskboard — render และแก้ไข task list
// ผ่าน taskstate.Store
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/client/taskapi"
	"taskboard/client/taskstate"
	"taskboard/domain/models"
)

// Run เริ่ม TUI — block จน user ออก
func Run(ctx context.Context, apiBaseURL string) error {
	client := taskapi.NewClient(apiBaseURL)
	store := taskstate.NewStore(client)

	model := newModel(ctx, store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewMode int

const (
	modeList viewMode = iota
	modeCreate
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

type model struct {
	ctx   context.Context
	store *taskstate.Store

	mode   viewMode
	cursor int

	// create form
	titleInput  string
	descInput   string
	activeField formField
	formErr     string

	pending bool // มี operation ค้างอยู่
}

// opDoneMsg ส่งกลับเมื่อ operation กับ store จบ — View อ่าน snapshot ใหม่เอง
type opDoneMsg struct{}

func newModel(ctx context.Context, store *taskstate.Store) *model {
	return &model{
		ctx:   ctx,
		store: store,
	}
}

func (m *model) Init() tea.Cmd {
	return m.opCmd(func() {
		_ = m.store.Refresh(m.ctx)
	})
}

// opCmd ห่อ store operation เป็น tea.Cmd — ทำงานนอก UI goroutine
func (m *model) opCmd(op func()) tea.Cmd {
	m.pending = true
	return func() tea.Msg {
		op()
		return opDoneMsg{}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeCreate {
			return m.updateCreateForm(msg)
		}
		return m.updateList(msg)
	case opDoneMsg:
		m.pending = false
		m.clampCursor()
		return m, nil
	}
	return m, nil
}

func (m *model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "f5":
		return m, m.opCmd(func() { _ = m.store.Refresh(m.ctx) })
	case "0":
		return m, m.setFilter(taskstate.FilterAll)
	case "1":
		return m, m.setFilter(taskstate.Filter(models.StatusPending))
	case "2":
		return m, m.setFilter(taskstate.Filter(models.StatusInProgress))
	case "3":
		return m, m.setFilter(taskstate.Filter(models.StatusCompleted))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.store.Tasks())-1 {
			m.cursor++
		}
	case "n":
		m.mode = modeCreate
		m.titleInput = ""
		m.descInput = ""
		m.activeField = fieldTitle
		m.formErr = ""
	case "enter", " ":
		// เลื่อน status ไปขั้นถัดไป — forward-only เป็นแค่ convenience ของ UI
		tasks := m.store.Tasks()
		if m.cursor < len(tasks) {
			task := tasks[m.cursor]
			if next, ok := task.Status.NextStatus(); ok {
				id := task.ID.String()
				return m, m.opCmd(func() {
					_, _ = m.store.UpdateStatus(m.ctx, id, next)
				})
			}
		}
	case "d", "delete":
		tasks := m.store.Tasks()
		if m.cursor < len(tasks) {
			id := tasks[m.cursor].ID.String()
			return m, m.opCmd(func() {
				_ = m.store.Delete(m.ctx, id)
			})
		}
	}
	return m, nil
}

func (m *model) setFilter(f taskstate.Filter) tea.Cmd {
	m.store.SetFilter(f)
	m.cursor = 0
	return m.opCmd(func() { _ = m.store.Refresh(m.ctx) })
}

func (m *model) updateCreateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeList
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		if m.activeField == fieldTitle {
			m.activeField = fieldDescription
		} else {
			m.activeField = fieldTitle
		}
		return m, nil
	case tea.KeyEnter:
		return m.submitCreateForm()
	case tea.KeyBackspace:
		field := m.activeInput()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		*m.activeInput() += string(msg.Runes)
		if msg.Type == tea.KeySpace {
			*m.activeInput() += " "
		}
		return m, nil
	}
	return m, nil
}

func (m *model) activeInput() *string {
	if m.activeField == fieldTitle {
		return &m.titleInput
	}
	return &m.descInput
}

// submitCreateForm validate ก่อนเรียก store — title ห้ามว่างและยาวไม่เกิน limit
func (m *model) submitCreateForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput)
	if title == "" {
		m.formErr = "Title is required"
		return m, nil
	}
	if len([]rune(title)) > models.TitleMaxLength {
		m.formErr = "Title cannot exceed 100 characters"
		return m, nil
	}

	description := strings.TrimSpace(m.descInput)
	m.mode = modeList
	m.cursor = 0
	return m, m.opCmd(func() {
		_, _ = m.store.Create(m.ctx, title, description)
	})
}

func (m *model) clampCursor() {
	n := len(m.store.Tasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}
