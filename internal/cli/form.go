package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/leten02/TimeGrid/internal/cli/formatter"
	"github.com/leten02/TimeGrid/internal/domain"
)

// timegridHuhTheme returns a huh theme in the formatter's Gruvbox palette.
func timegridHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormValues backs the interactive task form. Everything is a string so
// huh inputs can bind to it directly.
type taskFormValues struct {
	Title      string
	Minutes    string
	Deadline   string
	Importance string
	Focus      string
	Prefer     string
	Splittable bool
}

func defaultTaskFormValues(now time.Time) taskFormValues {
	return taskFormValues{
		Minutes:    "60",
		Deadline:   now.AddDate(0, 0, 7).Format(dateLayout),
		Importance: "3",
		Focus:      string(domain.FocusMedium),
		Prefer:     string(domain.PreferAny),
		Splittable: true,
	}
}

func newTaskForm(v *taskFormValues, loc *time.Location) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Estimate (minutes)").
				Value(&v.Minutes).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD or YYYY-MM-DD HH:MM").
				Value(&v.Deadline).
				Validate(func(s string) error {
					_, err := parseDeadline(s, loc)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Importance").
				Options(
					huh.NewOption("5 - critical", "5"),
					huh.NewOption("4 - high", "4"),
					huh.NewOption("3 - normal", "3"),
					huh.NewOption("2 - low", "2"),
					huh.NewOption("1 - whenever", "1"),
				).
				Value(&v.Importance),
			huh.NewSelect[string]().
				Title("Focus needed").
				Options(
					huh.NewOption("Deep work", string(domain.FocusHigh)),
					huh.NewOption("Normal", string(domain.FocusMedium)),
					huh.NewOption("Light", string(domain.FocusLow)),
				).
				Value(&v.Focus),
			huh.NewSelect[string]().
				Title("Preferred time").
				Options(
					huh.NewOption("Any", string(domain.PreferAny)),
					huh.NewOption("Morning", string(domain.PreferMorning)),
					huh.NewOption("Afternoon", string(domain.PreferAfternoon)),
					huh.NewOption("Evening", string(domain.PreferEvening)),
				).
				Value(&v.Prefer),
			huh.NewConfirm().
				Title("Can it be split across sittings?").
				Value(&v.Splittable),
		),
	).WithTheme(timegridHuhTheme()).WithShowHelp(false)
}

// toTask converts submitted form values into a task ready for the service.
func (v taskFormValues) toTask(loc *time.Location) (*domain.Task, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(v.Minutes))
	if err != nil {
		return nil, fmt.Errorf("invalid estimate %q", v.Minutes)
	}
	deadline, err := parseDeadline(v.Deadline, loc)
	if err != nil {
		return nil, err
	}
	importance, err := strconv.Atoi(v.Importance)
	if err != nil {
		return nil, fmt.Errorf("invalid importance %q", v.Importance)
	}
	return &domain.Task{
		Title:            strings.TrimSpace(v.Title),
		EstimatedMinutes: minutes,
		Deadline:         deadline,
		Importance:       importance,
		FocusNeed:        domain.FocusNeed(v.Focus),
		PreferredTime:    domain.PreferredTime(v.Prefer),
		Splittable:       v.Splittable,
	}, nil
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrEmptyTitle
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
