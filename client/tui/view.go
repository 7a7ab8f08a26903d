package tui

import (
	"fmt"
	"strings"

	"taskboard/client/taskstate"
	"taskboard/domain/models"
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString("Taskboard\n")
	b.WriteString(strings.Repeat("─", 60) + "\n\n")

	if m.mode == modeCreate {
		m.writeCreateForm(&b)
		return b.String()
	}

	m.writeFilterTabs(&b)

	if err := m.store.Err(); err != "" {
		b.WriteString("Error: " + err + " (press r to retry)\n\n")
	}

	if m.store.Loading() || m.pending {
		b.WriteString("Loading...\n\n")
	}

	m.writeTaskList(&b)
	m.writeFooter(&b)
	return b.String()
}

// writeFilterTabs filter tabs พร้อมจำนวนจาก snapshot
func (m *model) writeFilterTabs(b *strings.Builder) {
	counts := m.store.Counts()
	active := m.store.Filter()

	tabs := []struct {
		key    string
		filter taskstate.Filter
		label  string
		count  int
	}{
		{"0", taskstate.FilterAll, "All Tasks", counts.All},
		{"1", taskstate.Filter(models.StatusPending), "Pending", counts.Pending},
		{"2", taskstate.Filter(models.StatusInProgress), "In Progress", counts.InProgress},
		{"3", taskstate.Filter(models.StatusCompleted), "Completed", counts.Completed},
	}

	for i, tab := range tabs {
		if i > 0 {
			b.WriteString("  ")
		}
		marker := " "
		if tab.filter == active {
			marker = "*"
		}
		fmt.Fprintf(b, "[%s]%s%s (%d)", tab.key, marker, tab.label, tab.count)
	}
	b.WriteString("\n\n")
}

func (m *model) writeTaskList(b *strings.Builder) {
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString("  No tasks. Press n to create one.\n\n")
		return
	}

	for i, task := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		fmt.Fprintf(b, "%s%-13s %s\n", cursor, statusBadge(task.Status), task.Title)
		if task.Description != "" {
			fmt.Fprintf(b, "                %s\n", task.Description)
		}
	}
	b.WriteString("\n")
}

func statusBadge(status models.TaskStatus) string {
	switch status {
	case models.StatusPending:
		return "[pending]"
	case models.StatusInProgress:
		return "[in-progress]"
	case models.StatusCompleted:
		return "[completed]"
	}
	return "[" + string(status) + "]"
}

func (m *model) writeCreateForm(b *strings.Builder) {
	b.WriteString("New Task\n\n")

	titleMarker := "  "
	descMarker := "  "
	if m.activeField == fieldTitle {
		titleMarker = "> "
	} else {
		descMarker = "> "
	}

	fmt.Fprintf(b, "%sTitle:       %s\n", titleMarker, m.titleInput)
	fmt.Fprintf(b, "%sDescription: %s\n\n", descMarker, m.descInput)

	if m.formErr != "" {
		b.WriteString("Error: " + m.formErr + "\n\n")
	}

	b.WriteString("tab: switch field • enter: create • esc: cancel\n")
}

func (m *model) writeFooter(b *strings.Builder) {
	b.WriteString(strings.Repeat("─", 60) + "\n")
	b.WriteString("n: new • enter/space: advance status • d: delete • 0-3: filter • r: refresh • q: quit\n")
}
