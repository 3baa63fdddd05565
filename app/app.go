// Package app assembles the studia command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tobisalami/studia/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the studia app instance.
func Get() *cli.App {
	studiaApp := &cli.App{
		Name: "studia",
		Authors: []*cli.Author{
			{
				Name:  "Tobi Salami",
				Email: "tobisalami@fastmail.com",
			},
		},
		Usage: `
		Studia is a command-line study planner. It tracks study tasks and study
		sessions, and suggests what to work on next based on your study patterns.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a new study task. Prompts interactively when no title is given",
				ArgsUsage: "[title]",
				Action:    addAction,
				Flags: []cli.Flag{
					descFlag,
					priorityFlag,
					dueFlag,
				},
			},
			{
				Name:   "tasks",
				Usage:  "List every task, pending before completed, ordered by priority",
				Action: tasksAction,
			},
			{
				Name:      "done",
				Usage:     "Mark a task as completed",
				ArgsUsage: "<task id>",
				Action:    doneAction,
			},
			{
				Name:      "rm",
				Usage:     "Delete a task",
				ArgsUsage: "<task id>",
				Action:    rmAction,
			},
			{
				Name:   "priority",
				Usage:  "List pending high-priority tasks",
				Action: priorityAction,
			},
			{
				Name:      "start",
				Usage:     "Record a study session for a subject",
				ArgsUsage: "<subject> [minutes]",
				Action:    startAction,
			},
			{
				Name:   "sessions",
				Usage:  "List recent study sessions",
				Action: sessionsAction,
				Flags: []cli.Flag{
					limitFlag,
					subjectFlag,
					allFlag,
				},
			},
			{
				Name:   "stats",
				Usage:  "Show task and study statistics with a per-subject breakdown",
				Action: statsAction,
			},
			{
				Name:   "recommend",
				Usage:  "Get study recommendations based on your study patterns",
				Action: recommendAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
	}

	return studiaApp
}
