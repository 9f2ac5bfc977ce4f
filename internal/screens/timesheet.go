package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmc-dev/pmc/internal/models"
)

// timesheet shows today's time entries and their total.
type timesheet struct {
	deps Deps

	day     time.Time
	entries []*models.TimeEntry
	titles  map[string]string
	err     error
}

func newTimesheet(deps Deps, _ string) (Screen, error) {
	s := &timesheet{deps: deps, day: time.Now().UTC()}
	s.refresh()
	return s, nil
}

func (s *timesheet) refresh() {
	ctx := context.Background()

	entries, err := s.deps.Time.ListForDay(ctx, s.day)
	if err != nil {
		s.err = err
		return
	}

	titles := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, ok := titles[entry.TaskID]; ok {
			continue
		}
		task, err := s.deps.Tasks.Get(ctx, entry.TaskID)
		if err != nil {
			titles[entry.TaskID] = entry.TaskID
			continue
		}
		titles[entry.TaskID] = task.Title
	}

	s.entries = entries
	s.titles = titles
	s.err = nil
}

func (s *timesheet) Title() string { return "Timesheet" }

func (s *timesheet) Init() tea.Cmd { return nil }

func (s *timesheet) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "r":
		s.refresh()
	case "h", "left":
		s.day = s.day.Add(-24 * time.Hour)
		s.refresh()
	case "l", "right":
		s.day = s.day.Add(24 * time.Hour)
		s.refresh()
	}
	return s, nil
}

func (s *timesheet) View() string {
	if s.err != nil {
		return s.deps.Theme.Style("Error").Render("error: " + s.err.Error())
	}

	var b strings.Builder
	b.WriteString(s.deps.Theme.Style("Header").Render(s.day.Format("Mon 02 Jan 2006")))
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(s.deps.Theme.Style("Muted").Render("No time recorded."))
		return b.String()
	}

	now := time.Now().UTC()
	var total time.Duration
	for _, entry := range s.entries {
		duration := entry.Duration(now)
		total += duration

		state := s.deps.Theme.Style("Success").Render(formatDuration(duration))
		if entry.End == nil {
			state = s.deps.Theme.Style("Warning").Render(formatDuration(duration) + " (running)")
		}
		title := s.deps.Theme.Style("Text").Render(s.titles[entry.TaskID])
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			s.deps.Theme.Style("Muted").Render(entry.Start.Format("15:04")), state, title))
	}

	b.WriteString("\n")
	b.WriteString(s.deps.Theme.Style("Title").Render("Total " + formatDuration(total)))
	b.WriteString("\n\n")
	b.WriteString(s.deps.Theme.Style("Muted").Render("h/l previous/next day · r refresh"))
	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh%02dm", h, m)
}
