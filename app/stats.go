package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tobisalami/studia/internal/timeutil"
	"github.com/tobisalami/studia/internal/ui"
	"github.com/tobisalami/studia/task"
	"github.com/tobisalami/studia/tracker"
)

// taskSummary renders the task statistics section.
func taskSummary(stats task.Stats) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%s\n", ui.Blue("Tasks")))
	builder.WriteString(fmt.Sprintln("Total:", ui.Green(stats.Total)))
	builder.WriteString(fmt.Sprintln("Completed:", ui.Green(stats.Completed)))
	builder.WriteString(fmt.Sprintln("Pending:", ui.Green(stats.Pending)))
	builder.WriteString(
		fmt.Sprintln("High priority:", ui.Green(stats.HighPriority)),
	)
	builder.WriteString(fmt.Sprintf(
		"Completion rate: %s\n",
		ui.Green(fmt.Sprintf("%.1f%%", stats.CompletionRate)),
	))

	return builder.String()
}

// studySummary renders the study statistics section.
func studySummary(stats tracker.Stats) string {
	var builder strings.Builder

	totalTime := durafmt.Parse(
		time.Duration(stats.TotalHours * float64(time.Hour)),
	)

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Study sessions")))
	builder.WriteString(
		fmt.Sprintln("Sessions logged:", ui.Green(stats.TotalSessions)),
	)
	builder.WriteString(fmt.Sprintf(
		"Time logged: %s\n",
		//nolint:gomnd // limit to first 2 units
		ui.Green(totalTime.LimitToUnit("hours").LimitFirstN(2)),
	))
	builder.WriteString(fmt.Sprintf(
		"Average session: %s\n",
		ui.Green(timeutil.FormatMins(timeutil.Round(stats.AvgDuration))),
	))
	builder.WriteString(fmt.Sprintf(
		"Most studied subject: %s\n",
		ui.Green(stats.MostStudied),
	))

	return builder.String()
}

// printBreakdown renders the per-subject bar chart.
func printBreakdown(breakdown []tracker.SubjectTime) {
	if len(breakdown) == 0 {
		return
	}

	var bars pterm.Bars

	for _, st := range breakdown {
		bars = append(bars, pterm.Bar{
			Value: st.Minutes,
			Label: st.Subject,
		})
	}

	ui.PrintBarChart("\nSubject breakdown (minutes)", bars, os.Stdout)
}

// statsAction handles the stats command.
func statsAction(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	log, err := tracker.New(db)
	if err != nil {
		return err
	}

	pterm.Print(taskSummary(manager.Statistics()))
	pterm.Print(studySummary(log.Statistics()))
	printBreakdown(log.Breakdown())

	return nil
}
