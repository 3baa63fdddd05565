package tracker

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/timeutil"
	"github.com/tobisalami/studia/internal/ui"
)

const noSessionsMsg = "No study sessions found. Start one to begin tracking!"

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []models.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		s := sessions[i]

		row := []string{
			s.StartTime.Format("Jan 02, 2006 03:04 PM"),
			s.Subject,
			timeutil.FormatMins(s.ActualDuration),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"START DATE", "SUBJECT", "DURATION"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of study sessions.
func List(sessions []models.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions)

	return nil
}
