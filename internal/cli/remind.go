package cli

import (
	"os"
	"time"

	"github.com/candyhq/candy/internal/reminder"
	"github.com/candyhq/candy/internal/settings"
)

type RemindCmd struct {
	Serve RemindServeCmd `cmd:"" help:"Run the daily reminder scheduler in the foreground."`
	Now   RemindNowCmd   `cmd:"" default:"1" help:"Print today's unfinished tasks."`
}

type RemindNowCmd struct{}

func (c *RemindNowCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	reminder.New(ctx.Engine, os.Stdout).Emit(time.Now())
	return nil
}

type RemindServeCmd struct {
	At string `help:"Override the reminder time (HH:MM)." default:""`
}

func (c *RemindServeCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	at := c.At
	if at == "" {
		cfg, err := settings.Get(ctx.KV)
		if err != nil {
			return err
		}
		at = cfg.ReminderTime
	}

	return reminder.New(ctx.Engine, os.Stdout).Serve(at)
}
