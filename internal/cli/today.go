package cli

import (
	"fmt"

	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/utils"
)

type TodayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	views := ctx.Engine.ActiveTasksForDate(date)
	if len(views) == 0 {
		fmt.Printf("No active tasks for %s.\n", utils.DateKey(date))
		return nil
	}

	// The engine keeps insertion order; the todo/done split is presentation.
	var todo, done []models.TaskView
	for _, v := range views {
		if v.Done {
			done = append(done, v)
		} else {
			todo = append(todo, v)
		}
	}

	fmt.Printf("Tasks for %s:\n\n", utils.DateKey(date))
	for _, v := range todo {
		printTaskLine(v, "[ ]")
	}
	for _, v := range done {
		printTaskLine(v, "[x]")
	}

	fmt.Printf("\nDone: %d/%d\n", len(done), len(views))
	return nil
}

func printTaskLine(v models.TaskView, checkbox string) {
	label := v.Label
	if v.Icon != "" {
		label = v.Icon + " " + label
	}
	if v.IsFavorite {
		label += " ★"
	}
	fmt.Printf("%s %s  (%s)\n", checkbox, label, shortID(v.ID))
}

type DoneCmd struct {
	ID   string `arg:"" help:"Task id (full or unique prefix)."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	taskID, err := resolveTaskID(ctx, c.ID)
	if err != nil {
		return err
	}

	task, _ := ctx.Tasks.Get(taskID)
	done, ok := ctx.Engine.Toggle(date, taskID)
	if !ok {
		return fmt.Errorf("task %q is not active on %s", task.Label, utils.DateKey(date))
	}

	if done {
		fmt.Printf("Marked %q done for %s\n", task.Label, utils.DateKey(date))
	} else {
		fmt.Printf("Unmarked %q for %s\n", task.Label, utils.DateKey(date))
	}
	return nil
}

// resolveTaskID accepts a full id or a unique prefix.
func resolveTaskID(ctx *Context, id string) (string, error) {
	if _, ok := ctx.Tasks.Get(id); ok {
		return id, nil
	}

	var match string
	for _, t := range ctx.Tasks.List() {
		if len(id) > 0 && len(t.ID) >= len(id) && t.ID[:len(id)] == id {
			if match != "" {
				return "", fmt.Errorf("task id prefix %q is ambiguous", id)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("task not found: %s", id)
	}
	return match, nil
}
