package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███████╗████████╗██╗   ██╗██████╗ ██╗ █████╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗██║██╔══██╗
███████╗   ██║   ██║   ██║██║  ██║██║███████║
╚════██║   ██║   ██║   ██║██║  ██║██║██╔══██║
███████║   ██║   ╚██████╔╝██████╔╝██║██║  ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝ ╚═╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration
// prompts.
type PromptOptions struct {
	SessionDuration int
	DefaultPriority string
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts on the first run.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Studia for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file directly to change any settings later.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default study session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.SessionDuration),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default task priority").
				Options(
					huh.NewOption("Medium", "Medium").Selected(true),
					huh.NewOption("High", "High"),
					huh.NewOption("Low", "Low"),
				).
				Value(&opts.DefaultPriority),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the
// configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Sessions.DefaultDuration = opts.SessionDuration
	c.Tasks.DefaultPriority = opts.DefaultPriority
}
