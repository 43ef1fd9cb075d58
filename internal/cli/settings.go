package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abacus-io/abacus/internal/config"
	"github.com/abacus-io/abacus/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "View or change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		logPath, _ := config.LogFilePath(settings)
		debugPath, _ := config.DebugLogFilePath(settings)

		printSetting("log.path", logPath)
		printSetting("format.max_denominator", strconv.Itoa(settings.Format.MaxDenominator))
		printSetting("debug.enabled", strconv.FormatBool(settings.Debug.Enabled))
		printSetting("debug.path", debugPath)
		printSetting("appearance.theme", settings.Appearance.Theme)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to settings.yaml.

Keys:
  log.path                calculation log location (empty restores default)
  format.max_denominator  fraction approximation bound
  debug.enabled           diagnostic logging (true/false)
  debug.path              diagnostic log location
  appearance.theme        system, light, or dark`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func printSetting(key, value string) {
	fmt.Printf("%s %s\n", styleLabel.Render(key+":"), value)
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("%s set to %q", key, value)))
	return nil
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case "log.path":
		settings.Log.Path = value
	case "format.max_denominator":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("max_denominator must be a positive integer, got %q", value)
		}
		settings.Format.MaxDenominator = n
	case "debug.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug.enabled must be true or false, got %q", value)
		}
		settings.Debug.Enabled = b
	case "debug.path":
		settings.Debug.Path = value
	case "appearance.theme":
		switch value {
		case "system", "light", "dark":
			settings.Appearance.Theme = value
		default:
			return fmt.Errorf("theme must be system, light, or dark, got %q", value)
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
