package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/utils"
)

type MoodCmd struct {
	Set   MoodSetCmd   `cmd:"" help:"Record your mood for a day."`
	Show  MoodShowCmd  `cmd:"" help:"Show the mood for a day."`
	Month MoodMonthCmd `cmd:"" help:"Show the mood calendar for a month."`
}

type MoodSetCmd struct {
	Index int    `arg:"" help:"Mood index 0-4 (0=Great, 4=Bad)."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MoodSetCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	log := models.MoodLog{Date: utils.DateKey(date), MoodIndex: c.Index}
	if err := ctx.Moods.Add(log); err != nil {
		return err
	}

	fmt.Printf("I feel %s! %s (%s)\n",
		models.MoodLabels[c.Index], models.MoodEmojis[c.Index], log.Date)
	return nil
}

type MoodShowCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MoodShowCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	log, ok := ctx.Moods.Get(utils.DateKey(date))
	if !ok {
		fmt.Printf("No mood recorded for %s.\n", utils.DateKey(date))
		return nil
	}

	fmt.Printf("%s: %s %s\n", log.Date, models.MoodEmojis[log.MoodIndex], models.MoodLabels[log.MoodIndex])
	return nil
}

type MoodMonthCmd struct {
	Month string `help:"Month to show as YYYY-MM (default: current month)." default:""`
}

func (c *MoodMonthCmd) Run(ctx *Context) error {
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

	fmt.Println(statHeaderStyle.Render("Mood - " + ref.Format("January 2006")))
	fmt.Println()
	fmt.Println(mutedStyle.Render("  Mo Tu We Th Fr Sa Su"))

	offset := (int(dates[0].Weekday()) + 6) % 7
	line := "  " + strings.Repeat("   ", offset)
	col := offset
	for i, date := range dates {
		cell := fmt.Sprintf("%2d", i+1)
		if log, ok := ctx.Moods.Get(utils.DateKey(date)); ok {
			cell = models.MoodEmojis[log.MoodIndex]
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
	return nil
}
