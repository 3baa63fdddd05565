package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	descFlag = &cli.StringFlag{
		Name:    "desc",
		Aliases: []string{"d"},
		Usage:   "Task description",
	}

	priorityFlag = &cli.StringFlag{
		Name:    "priority",
		Aliases: []string{"p"},
		Usage:   "Task priority: high, medium, or low (default: medium)",
	}

	dueFlag = &cli.StringFlag{
		Name:  "due",
		Usage: "Due date, e.g. 2025-10-01 or 'Oct 1 2025'",
	}

	limitFlag = &cli.UintFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of sessions to list (default: 5)",
	}

	subjectFlag = &cli.StringFlag{
		Name:    "subject",
		Aliases: []string{"s"},
		Usage:   "Only list sessions for this subject (case-insensitive)",
	}

	allFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "List every session instead of the most recent ones",
	}
)
