package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tobisalami/studia/advice"
	"github.com/tobisalami/studia/internal/config"
	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/ui"
	"github.com/tobisalami/studia/store"
	"github.com/tobisalami/studia/task"
	"github.com/tobisalami/studia/tracker"
)

const (
	envNoColor       = "NO_COLOR"
	envStudiaNoColor = "STUDIA_NO_COLOR"
)

var (
	errNoTaskID  = errors.New("a task id is required")
	errNoSubject = errors.New("a subject is required")

	errInvalidDuration = errors.New(
		"the planned duration must be a positive number of minutes",
	)
)

// loadConfig reads the configuration, running the first-run prompt if
// no config file exists yet.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithPromptConfig(config.ConfigFilePath()),
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded", "config", spew.Sdump(cfg))

	return cfg, nil
}

// openDB connects to the database at the configured path.
func openDB() (*store.Client, error) {
	return store.NewClient(config.DBFilePath())
}

// parseDueDate accepts a flexible date string and normalizes it to
// YYYY-MM-DD. An empty input stays empty (no due date).
func parseDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	date, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("invalid due date %q: %w", s, err)
	}

	return date.Format(time.DateOnly), nil
}

// promptTask collects task details through an interactive form.
func promptTask(defaultPriority string) (
	title, desc string,
	priority models.Priority,
	dueDate string,
	err error,
) {
	var priorityStr, dueStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("the title cannot be empty")
					}
					return nil
				}).
				Value(&title),
			huh.NewInput().
				Title("Description").
				Value(&desc),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", "High"),
					huh.NewOption("Medium", "Medium").
						Selected(defaultPriority != "High" && defaultPriority != "Low"),
					huh.NewOption("Low", "Low"),
				).
				Value(&priorityStr),
			huh.NewInput().
				Title("Due date (optional)").
				Validate(func(s string) error {
					_, verr := parseDueDate(s)
					return verr
				}).
				Value(&dueStr),
		),
	)

	if err = form.Run(); err != nil {
		return "", "", "", "", fmt.Errorf("form interaction failed: %w", err)
	}

	dueDate, err = parseDueDate(dueStr)
	if err != nil {
		return "", "", "", "", err
	}

	return title, desc, models.ParsePriority(priorityStr), dueDate, nil
}

// addAction handles the add command which creates a new task.
func addAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(ctx.Args().First())

	var (
		desc     string
		priority models.Priority
		dueDate  string
	)

	if title == "" {
		title, desc, priority, dueDate, err = promptTask(cfg.Tasks.DefaultPriority)
		if err != nil {
			return err
		}
	} else {
		desc = ctx.String("desc")

		priorityStr := ctx.String("priority")
		if priorityStr == "" {
			priorityStr = cfg.Tasks.DefaultPriority
		}

		priority = models.ParsePriority(priorityStr)

		dueDate, err = parseDueDate(ctx.String("due"))
		if err != nil {
			return err
		}
	}

	id, err := manager.Add(title, desc, priority, dueDate)
	if err != nil {
		return err
	}

	slog.Info("task added", "id", id, "priority", priority)

	pterm.Success.Printfln("Task added successfully! (ID: %s)", id)

	return nil
}

// tasksAction handles the tasks command which lists every task.
func tasksAction(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	return task.List(manager.All())
}

// doneAction handles the done command which marks a task as completed.
func doneAction(ctx *cli.Context) error {
	id := strings.TrimSpace(ctx.Args().First())
	if id == "" {
		return errNoTaskID
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	err = manager.Complete(id)
	if errors.Is(err, task.ErrNotFound) {
		pterm.Error.Println("Task not found!")
		return nil
	}

	if err != nil {
		return err
	}

	slog.Info("task completed", "id", id)

	pterm.Success.Println("Task marked as completed!")

	return nil
}

// rmAction handles the rm command which deletes a task.
func rmAction(ctx *cli.Context) error {
	id := strings.TrimSpace(ctx.Args().First())
	if id == "" {
		return errNoTaskID
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	err = manager.Delete(id)
	if errors.Is(err, task.ErrNotFound) {
		pterm.Error.Println("Task not found!")
		return nil
	}

	if err != nil {
		return err
	}

	slog.Info("task deleted", "id", id)

	pterm.Success.Println("Task deleted successfully!")

	return nil
}

// priorityAction handles the priority command which lists pending
// high-priority tasks.
func priorityAction(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := task.NewManager(db)
	if err != nil {
		return err
	}

	tasks := manager.Priority()
	if len(tasks) == 0 {
		pterm.Info.Println("No high priority tasks found!")
		return nil
	}

	return task.List(tasks)
}

// sessionCmd builds the command configured to run after a session is
// logged, or nil if none is configured.
func sessionCmd(cmdStr string) *exec.Cmd {
	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		pterm.Warning.Println("unable to parse session cmd option")
		return nil
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd
}

// startAction handles the start command which records a study session.
func startAction(ctx *cli.Context) error {
	subject := strings.TrimSpace(ctx.Args().First())
	if subject == "" {
		return errNoSubject
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	minutes := cfg.Sessions.DefaultDuration

	if arg := ctx.Args().Get(1); arg != "" {
		minutes, err = strconv.Atoi(arg)
		if err != nil || minutes <= 0 {
			return errInvalidDuration
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log, err := tracker.New(db)
	if err != nil {
		return err
	}

	sess, err := log.Start(subject, minutes)
	if err != nil {
		return err
	}

	slog.Info(
		"session logged",
		"subject", sess.Subject,
		"minutes", sess.ActualDuration,
	)

	pterm.Success.Printfln(
		"Study session logged for %s (%d minutes). Good luck with your studies!",
		sess.Subject,
		sess.ActualDuration,
	)

	if cmd := sessionCmd(cfg.Settings.Cmd); cmd != nil {
		return cmd.Run()
	}

	return nil
}

// sessionsAction handles the sessions command which lists sessions.
func sessionsAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log, err := tracker.New(db)
	if err != nil {
		return err
	}

	if subject := ctx.String("subject"); subject != "" {
		return tracker.List(log.BySubject(subject))
	}

	if ctx.Bool("all") {
		return tracker.List(log.Sessions())
	}

	limit := int(ctx.Uint("limit"))
	if limit == 0 {
		limit = cfg.Sessions.RecentLimit
	}

	return tracker.List(log.Recent(limit))
}

// recommendAction handles the recommend command.
func recommendAction(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log, err := tracker.New(db)
	if err != nil {
		return err
	}

	engine := advice.New(log)

	pterm.Println(ui.Blue("Based on your study patterns, here are some recommendations:"))
	pterm.Println()

	for i, rec := range engine.Recommendations() {
		pterm.Printfln("%s %s", ui.Highlight(fmt.Sprintf("%d.", i+1)), rec)
	}

	if subject, ok := engine.NextSubject(); ok {
		pterm.Println()
		pterm.Info.Printfln("Suggested next subject: %s", ui.Green(subject))
	}

	pterm.Info.Printfln(
		"Suggested session length: %s",
		ui.Green(fmt.Sprintf("%d minutes", engine.OptimalDuration())),
	)

	return nil
}

// initLogger routes slog output to a rotating log file.
func initLogger() {
	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
		Compress:   true,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STUDIA_NO_COLOR is set
	if _, exists := os.LookupEnv(envStudiaNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
