package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/candyhq/candy/internal/models"
)

// Palette choices offered by the interactive form, lifted from the app's
// task form.
var formColors = []string{
	"#FFFFCD", "#FFCD9A", "#AA959A", "#C7A5A3", "#FF9799",
	"#FFCBCB", "#FF9BCD", "#FFCFFF", "#CC9AFD", "#CCCEFD",
	"#9CCDFE", "#99C7C5", "#CDFFFE", "#CDFFCC", "#5BE2F7",
}

var formIcons = []string{
	"☂️", "🎓", "💼", "🧳", "👑", "🏄", "🐓", "🏯", "💳", "💞",
	"🗓", "💎", "❤️‍🔥", "⚒", "💻", "⌚️",
}

// runTaskForm edits the task in place with an interactive form.
func runTaskForm(task *models.RoutineTask) error {
	colorOptions := make([]huh.Option[string], 0, len(formColors)+1)
	colorOptions = append(colorOptions, huh.NewOption("none", ""))
	for _, c := range formColors {
		colorOptions = append(colorOptions, huh.NewOption(c, c))
	}

	iconOptions := make([]huh.Option[string], 0, len(formIcons)+1)
	iconOptions = append(iconOptions, huh.NewOption("none", ""))
	for _, i := range formIcons {
		iconOptions = append(iconOptions, huh.NewOption(i, i))
	}

	dayOptions := make([]huh.Option[string], 0, len(models.WeekdayTokens))
	for _, d := range models.WeekdayTokens {
		dayOptions = append(dayOptions, huh.NewOption(d, d))
	}

	doItAt := string(task.DoItAt)
	days := append([]string(nil), task.RepeatValues...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Value(&task.Label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions...).
				Value(&task.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&task.Color),
			huh.NewMultiSelect[string]().
				Title("On these days").
				Options(dayOptions...).
				Value(&days),
			huh.NewSelect[string]().
				Title("Do it at").
				Options(
					huh.NewOption("anytime", ""),
					huh.NewOption("morning", string(models.DayPartMorning)),
					huh.NewOption("afternoon", string(models.DayPartAfternoon)),
					huh.NewOption("evening", string(models.DayPartEvening)),
				).
				Value(&doItAt),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	task.DoItAt = models.DayPart(doItAt)
	// Keep canonical Sun..Sat ordering regardless of selection order.
	var ordered []string
	for _, token := range models.WeekdayTokens {
		for _, d := range days {
			if d == token {
				ordered = append(ordered, token)
				break
			}
		}
	}
	task.RepeatValues = ordered
	task.Repeat = models.RepeatDaily

	return nil
}
