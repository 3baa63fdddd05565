package task

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/ui"
)

const noTasksMsg = "No tasks found. Add some tasks to get started!"

// printTasksTable prints a task table to the command-line.
func printTasksTable(w io.Writer, tasks []models.Task) {
	tableBody := make([][]string, len(tasks))

	for i := range tasks {
		t := tasks[i]

		statusText := ui.Yellow("pending")
		if t.Completed {
			statusText = ui.Green("completed")
		}

		priorityText := string(t.Priority)

		switch t.Priority {
		case models.PriorityHigh:
			priorityText = ui.Red(priorityText)
		case models.PriorityLow:
			priorityText = ui.Cyan(priorityText)
		case models.PriorityMedium:
		}

		dueDate := t.DueDate
		if dueDate == "" {
			dueDate = "-"
		}

		row := []string{
			t.ID,
			t.Title,
			priorityText,
			dueDate,
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "TITLE", "PRIORITY", "DUE DATE", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of tasks.
func List(tasks []models.Task) error {
	if len(tasks) == 0 {
		pterm.Info.Println(noTasksMsg)
		return nil
	}

	printTasksTable(os.Stdout, tasks)

	return nil
}
