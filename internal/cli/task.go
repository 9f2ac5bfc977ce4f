package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/models"
)

var (
	flagTaskProject  string
	flagTaskPriority int
	flagTaskDue      string
	flagTaskTags     []string
	flagTaskStatus   string
	flagTaskAll      bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)

	taskAddCmd.Flags().StringVarP(&flagTaskProject, "project", "p", "", "project to file the task under")
	taskAddCmd.Flags().IntVar(&flagTaskPriority, "priority", models.PriorityMedium, "priority, 1 (high) to 3 (low)")
	taskAddCmd.Flags().StringVar(&flagTaskDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringSliceVar(&flagTaskTags, "tag", nil, "tag to attach (repeatable)")

	taskListCmd.Flags().StringVarP(&flagTaskProject, "project", "p", "", "only tasks in this project")
	taskListCmd.Flags().StringVar(&flagTaskStatus, "status", "", "only tasks with this status")
	taskListCmd.Flags().BoolVarP(&flagTaskAll, "all", "a", false, "include done tasks")
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks without launching the TUI",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _, closeDB, err := openRepos()
		if err != nil {
			return err
		}
		defer closeDB()

		task := &models.Task{
			Title:    strings.Join(args, " "),
			Project:  flagTaskProject,
			Priority: flagTaskPriority,
			Tags:     flagTaskTags,
		}
		if flagTaskDue != "" {
			due, err := time.ParseInLocation("2006-01-02", flagTaskDue, time.Local)
			if err != nil {
				return fmt.Errorf("parse --due: %w", err)
			}
			task.Due = &due
		}

		if err := tasks.Create(cmd.Context(), task); err != nil {
			return err
		}
		fmt.Printf("added %s\n", task.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _, closeDB, err := openRepos()
		if err != nil {
			return err
		}
		defer closeDB()

		var query db.TaskQuery
		if flagTaskProject != "" {
			query.Project = &flagTaskProject
		}
		if flagTaskStatus != "" {
			status := models.TaskStatus(flagTaskStatus)
			query.Status = &status
		}

		list, err := tasks.List(cmd.Context(), query)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPRI\tSTATUS\tDUE\tPROJECT\tTITLE")
		for _, task := range list {
			if !flagTaskAll && flagTaskStatus == "" && task.Status == models.TaskStatusDone {
				continue
			}
			due := ""
			if task.Due != nil {
				due = task.Due.Local().Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
				shortID(task.ID), task.Priority, task.Status, due, task.Project, task.Title)
		}
		return w.Flush()
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _, closeDB, err := openRepos()
		if err != nil {
			return err
		}
		defer closeDB()

		id, err := resolveTaskID(cmd.Context(), tasks, args[0])
		if err != nil {
			return err
		}
		if err := tasks.Complete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("done %s\n", shortID(id))
		return nil
	},
}

// resolveTaskID accepts a full ID or a unique prefix.
func resolveTaskID(ctx context.Context, tasks *db.TaskRepository, ref string) (string, error) {
	if _, err := tasks.Get(ctx, ref); err == nil {
		return ref, nil
	}

	list, err := tasks.List(ctx, db.TaskQuery{})
	if err != nil {
		return "", err
	}
	var match string
	for _, task := range list {
		if strings.HasPrefix(task.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("task id %q is ambiguous", ref)
			}
			match = task.ID
		}
	}
	if match == "" {
		return "", db.ErrTaskNotFound
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
