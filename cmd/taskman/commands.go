package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskman/internal/form"
	"taskman/internal/model"
	"taskman/internal/query"
)

var (
	addDescription string
	addDueDate     string
	addPriority    string

	listFilter string
	listSearch string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(nil, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		d := form.NewDraft()
		d.SetField(form.FieldTitle, strings.Join(args, " "))
		d.SetField(form.FieldDescription, addDescription)
		d.SetField(form.FieldDueDate, addDueDate)
		d.SetField(form.FieldPriority, addPriority)

		p, ok := d.Submit()
		if !ok {
			for _, f := range form.Fields {
				if msg := d.VisibleError(f); msg != "" {
					fmt.Fprintf(os.Stderr, "%s: %s\n", f, msg)
				}
			}
			return fmt.Errorf("invalid task")
		}

		created := a.Store.Create(p)
		fmt.Printf("added %s  %s\n", created.ID, created.Title)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(nil, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		visible := query.Visible(a.Store.Tasks(), query.Filter(listFilter), listSearch)
		if len(visible) == 0 {
			fmt.Println("no tasks")
			return nil
		}

		now := time.Now()
		for _, t := range visible {
			check := " "
			if t.Done() {
				check = "x"
			}
			line := fmt.Sprintf("[%s] %s  %s", check, t.ID, t.Title)
			if label := model.FormatDueDate(t.DueDate, now); label != "" {
				line += "  (" + label + ")"
			}
			if t.Priority != "" {
				line += "  " + string(t.Priority)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task completed (or pending again with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(nil, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		id := model.TaskID(args[0])
		if _, ok := a.Store.Get(id); !ok {
			return fmt.Errorf("no task with id %s", id)
		}

		status := model.StatusCompleted
		if undone, _ := cmd.Flags().GetBool("undo"); undone {
			status = model.StatusPending
		}
		a.Store.SetStatus(id, status)
		fmt.Printf("%s -> %s\n", id, status)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(confirmOnStdin, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		id := model.TaskID(args[0])
		if _, ok := a.Store.Get(id); !ok {
			return fmt.Errorf("no task with id %s", id)
		}
		if a.Store.Delete(id) {
			fmt.Printf("deleted %s\n", id)
		} else {
			fmt.Println("aborted")
		}
		return nil
	},
}

// confirmOnStdin is the deletion gate for the scripted commands.
func confirmOnStdin(message string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N] ", message)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: high, medium or low")

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "status filter: all, active or completed")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search term for title/description")

	doneCmd.Flags().Bool("undo", false, "mark pending instead of completed")

	rmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}
