package cli

import (
	"fmt"

	"github.com/candyhq/candy/internal/settings"
)

type SettingsCmd struct {
	Get SettingsGetCmd `cmd:"" default:"1" help:"Show current settings."`
	Set SettingsSetCmd `cmd:"" help:"Change a setting."`
}

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	cfg, err := settings.Get(ctx.KV)
	if err != nil {
		return err
	}

	fmt.Printf("language:      %s\n", cfg.Language)
	fmt.Printf("reminder-time: %s\n", cfg.ReminderTime)
	return nil
}

type SettingsSetCmd struct {
	Language     string `help:"Display language (en or vi)." default:""`
	ReminderTime string `help:"Daily reminder time (HH:MM)." default:""`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	cfg, err := settings.Get(ctx.KV)
	if err != nil {
		return err
	}

	if c.Language == "" && c.ReminderTime == "" {
		return fmt.Errorf("nothing to set; pass --language or --reminder-time")
	}
	if c.Language != "" {
		cfg.Language = c.Language
	}
	if c.ReminderTime != "" {
		cfg.ReminderTime = c.ReminderTime
	}

	if err := settings.Save(ctx.KV, cfg); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}
