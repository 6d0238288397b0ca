package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/candyhq/candy/internal/utils"
)

var (
	statHeaderStyle = lipgloss.NewStyle().Bold(true)
	barStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#8882E7"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#5BE2F7")).Bold(true)
)

type WeekCmd struct {
	Date string `help:"Any date inside the week to chart (default: today)." default:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	ref, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	// Monday through the reference weekday carry real counts; the rest of
	// the week renders as zero, matching the weekly chart in the app.
	dates := utils.WeekDates(ref)
	counts := ctx.Engine.CompletedCounts(dates)
	for len(counts) < 7 {
		counts = append(counts, 0)
	}

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	fmt.Println(statHeaderStyle.Render("Weekly Activity"))
	fmt.Println()
	for i, label := range labels {
		bar := strings.Repeat("█", counts[i])
		if counts[i] == 0 {
			fmt.Printf("  %s %s\n", label, mutedStyle.Render("·"))
			continue
		}
		fmt.Printf("  %s %s %d\n", label, barStyle.Render(bar), counts[i])
	}
	return nil
}

type MonthCmd struct {
	Month string `help:"Month to show as YYYY-MM (default: current month)." default:""`
	Rates bool   `help:"Show the stored completion rate next to each marked day."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	ref := time.Now()
	if c.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
		ref = parsed
	}

	dates := utils.MonthDates(ref)
	stats := ctx.Engine.CalendarStats(dates)

	fmt.Println(statHeaderStyle.Render("Monthly Activity - " + ref.Format("January 2006")))
	fmt.Println()
	fmt.Println(mutedStyle.Render("  Mo Tu We Th Fr Sa Su"))

	// Monday-first offset for the 1st of the month.
	offset := (int(dates[0].Weekday()) + 6) % 7
	line := "  " + strings.Repeat("   ", offset)
	col := offset
	for i, stat := range stats {
		cell := fmt.Sprintf("%2d", i+1)
		if stat.HasCompletion {
			cell = markStyle.Render(cell)
		} else {
			cell = mutedStyle.Render(cell)
		}
		line += cell + " "
		col++
		if col == 7 {
			fmt.Println(line)
			line = "  "
			col = 0
		}
	}
	if col > 0 {
		fmt.Println(line)
	}

	if c.Rates {
		fmt.Println()
		for i, stat := range stats {
			if !stat.HasCompletion {
				continue
			}
			fmt.Printf("  %s  %3.0f%%\n", utils.DateKey(dates[i]), stat.Rate*100)
		}
	}
	return nil
}
