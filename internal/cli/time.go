package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmc-dev/pmc/internal/db"
)

var flagTimeNote string

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.AddCommand(timeStartCmd)
	timeCmd.AddCommand(timeStopCmd)

	timeStartCmd.Flags().StringVarP(&flagTimeNote, "note", "n", "", "what the time is spent on")
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Track time against tasks",
}

var timeStartCmd = &cobra.Command{
	Use:   "start <task-id>",
	Short: "Start a timer on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, timers, closeDB, err := openRepos()
		if err != nil {
			return err
		}
		defer closeDB()

		id, err := resolveTaskID(cmd.Context(), tasks, args[0])
		if err != nil {
			return err
		}
		entry, err := timers.Start(cmd.Context(), id, flagTimeNote)
		if err != nil {
			return err
		}
		fmt.Printf("timer started on %s at %s\n", shortID(id), entry.Start.Local().Format("15:04"))
		return nil
	},
}

var timeStopCmd = &cobra.Command{
	Use:   "stop <task-id>",
	Short: "Stop the running timer on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, timers, closeDB, err := openRepos()
		if err != nil {
			return err
		}
		defer closeDB()

		id, err := resolveTaskID(cmd.Context(), tasks, args[0])
		if err != nil {
			return err
		}
		if err := timers.Stop(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("timer stopped on %s\n", shortID(id))
		return nil
	},
}

// openRepos opens the database from config and returns both repositories
// plus a cleanup func.
func openRepos() (*db.TaskRepository, *db.TimeEntryRepository, func(), error) {
	store, _, err := loadStore()
	if err != nil {
		return nil, nil, nil, err
	}
	database, err := db.Open(store.DataPath())
	if err != nil {
		return nil, nil, nil, err
	}
	return db.NewTaskRepository(database), db.NewTimeEntryRepository(database),
		func() { database.Close() }, nil
}
