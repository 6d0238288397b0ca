package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/candyhq/candy/internal/models"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new routine task."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing routine task."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a routine task (soft delete)."`
	List   TaskListCmd   `cmd:"" help:"List routine tasks."`
	Show   TaskShowCmd   `cmd:"" help:"Show a routine task."`
	Fav    TaskFavCmd    `cmd:"" help:"Toggle a task's favorite flag."`
}

type TaskAddCmd struct {
	Label       string `arg:"" optional:"" help:"Task label."`
	Color       string `help:"Display color (hex)." default:""`
	Icon        string `help:"Display icon (emoji)." default:""`
	DoItAt      string `help:"Advisory time of day: morning, afternoon, evening." default:""`
	Days        string `help:"Weekdays the task repeats on, comma separated (Sun..Sat), or 'all'." default:"all"`
	Interactive bool   `short:"i" help:"Fill in the task with an interactive form."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	task := models.RoutineTask{
		ID:     uuid.New().String(),
		Label:  c.Label,
		Color:  c.Color,
		Icon:   c.Icon,
		DoItAt: models.DayPart(c.DoItAt),
		Repeat: models.RepeatDaily,
	}

	days, err := ParseWeekdayTokens(c.Days)
	if err != nil {
		return err
	}
	task.RepeatValues = days

	if c.Interactive {
		if err := runTaskForm(&task); err != nil {
			return err
		}
	}

	if strings.TrimSpace(task.Label) == "" {
		return fmt.Errorf("task label must not be empty")
	}
	if task.DoItAt != "" && !validDayPart(task.DoItAt) {
		return fmt.Errorf("invalid do-it-at value: %s", task.DoItAt)
	}

	ctx.Tasks.Add(task)

	fmt.Printf("Added task: %s\n", task.Label)
	return nil
}

type TaskEditCmd struct {
	ID          string `arg:"" help:"Task id."`
	Label       string `help:"New label." default:""`
	Color       string `help:"New display color." default:""`
	Icon        string `help:"New display icon." default:""`
	DoItAt      string `help:"New time-of-day hint." default:""`
	Days        string `help:"New weekday set, comma separated, or 'all'." default:""`
	Interactive bool   `short:"i" help:"Edit with an interactive form."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	task, ok := ctx.Tasks.Get(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	if c.Interactive {
		if err := runTaskForm(&task); err != nil {
			return err
		}
		if strings.TrimSpace(task.Label) == "" {
			return fmt.Errorf("task label must not be empty")
		}
		ctx.Tasks.Update(c.ID, models.TaskUpdate{
			Label:        &task.Label,
			Color:        &task.Color,
			Icon:         &task.Icon,
			DoItAt:       &task.DoItAt,
			RepeatValues: task.RepeatValues,
		})
		fmt.Printf("Updated task: %s\n", task.Label)
		return nil
	}

	var upd models.TaskUpdate
	if c.Label != "" {
		upd.Label = &c.Label
	}
	if c.Color != "" {
		upd.Color = &c.Color
	}
	if c.Icon != "" {
		upd.Icon = &c.Icon
	}
	if c.DoItAt != "" {
		part := models.DayPart(c.DoItAt)
		if !validDayPart(part) {
			return fmt.Errorf("invalid do-it-at value: %s", c.DoItAt)
		}
		upd.DoItAt = &part
	}
	if c.Days != "" {
		days, err := ParseWeekdayTokens(c.Days)
		if err != nil {
			return err
		}
		upd.RepeatValues = days
	}

	ctx.Tasks.Update(c.ID, upd)

	fmt.Println("Updated task.")
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	task, ok := ctx.Tasks.Get(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	ctx.Tasks.SoftDelete(c.ID)

	fmt.Printf("Deleted task: %s (history before today is preserved)\n", task.Label)
	return nil
}

type TaskListCmd struct {
	Deleted bool `help:"Include soft-deleted tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	tasks := ctx.Tasks.List()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Label", "Repeat", "Do it at", "Fav", "Status"})

	shown := 0
	for _, task := range tasks {
		if task.DeletedAt != nil && !c.Deleted {
			continue
		}

		fav := ""
		if task.IsFavorite {
			fav = "★"
		}
		status := "active"
		if task.DeletedAt != nil {
			status = "deleted " + task.DeletedAt.Format("2006-01-02")
		}
		label := task.Label
		if task.Icon != "" {
			label = task.Icon + " " + label
		}

		t.AppendRow(table.Row{shortID(task.ID), label, FormatRepeat(task), string(task.DoItAt), fav, status})
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println(t.Render())
	return nil
}

type TaskShowCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskShowCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	task, ok := ctx.Tasks.Get(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	fmt.Printf("ID:        %s\n", task.ID)
	fmt.Printf("Label:     %s\n", task.Label)
	fmt.Printf("Repeat:    %s\n", FormatRepeat(task))
	if task.DoItAt != "" {
		fmt.Printf("Do it at:  %s\n", task.DoItAt)
	}
	if task.Color != "" {
		fmt.Printf("Color:     %s\n", task.Color)
	}
	if task.Icon != "" {
		fmt.Printf("Icon:      %s\n", task.Icon)
	}
	fmt.Printf("Favorite:  %v\n", task.IsFavorite)
	fmt.Printf("Created:   %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Updated:   %s\n", task.UpdatedAt.Format("2006-01-02 15:04"))
	if task.DeletedAt != nil {
		fmt.Printf("Deleted:   %s\n", task.DeletedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

type TaskFavCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskFavCmd) Run(ctx *Context) error {
	if err := ctx.LoadStores(); err != nil {
		return err
	}

	task, ok := ctx.Tasks.Get(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	fav := !task.IsFavorite
	ctx.Tasks.Update(c.ID, models.TaskUpdate{IsFavorite: &fav})

	if fav {
		fmt.Printf("Marked %q as favorite.\n", task.Label)
	} else {
		fmt.Printf("Removed %q from favorites.\n", task.Label)
	}
	return nil
}

func validDayPart(p models.DayPart) bool {
	switch p {
	case models.DayPartMorning, models.DayPartAfternoon, models.DayPartEvening:
		return true
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
