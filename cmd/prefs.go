package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/matheuskafuri/campusnews/internal/prefs"
	"github.com/matheuskafuri/campusnews/internal/theme"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show display preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(m *prefs.Manager) error {
			printPrefs(cmd.OutOrStdout(), m.Record())
			return nil
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one preference (theme, font-size, high-contrast, reduced-motion)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(m *prefs.Manager) error {
			if err := setPref(m, args[0], args[1]); err != nil {
				return err
			}
			printPrefs(cmd.OutOrStdout(), m.Record())
			return nil
		})
	},
}

var prefsToggleThemeCmd = &cobra.Command{
	Use:   "toggle-theme",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(m *prefs.Manager) error {
			printPrefs(cmd.OutOrStdout(), m.ToggleTheme())
			return nil
		})
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(m *prefs.Manager) error {
			printPrefs(cmd.OutOrStdout(), m.Reset())
			return nil
		})
	},
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsToggleThemeCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

// withPrefs loads the manager against the configured storage. There is no
// rendering context outside the TUI, so style updates are discarded.
func withPrefs(fn func(*prefs.Manager) error) error {
	storage, closeStorage := openStorage()
	defer closeStorage()

	m := prefs.New(storage, theme.Discard)
	m.Load()
	return fn(m)
}

func setPref(m *prefs.Manager, field, value string) error {
	switch field {
	case "theme":
		mode := theme.Mode(value)
		if mode != theme.Light && mode != theme.Dark {
			return fmt.Errorf("theme must be light or dark, got %q", value)
		}
		m.SetTheme(mode)
	case "font-size", prefs.KeyFontSize:
		size, ok := lookupFontSize(value)
		if !ok {
			return fmt.Errorf("unknown font size %q (valid: small, normal, large, extra-large)", value)
		}
		m.SetFontSize(size)
	case "high-contrast", prefs.KeyHighContrast:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("high-contrast: %w", err)
		}
		m.SetHighContrast(on)
	case "reduced-motion", prefs.KeyReducedMotion:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("reduced-motion: %w", err)
		}
		m.SetReducedMotion(on)
	default:
		return fmt.Errorf("unknown preference %q (valid: theme, font-size, high-contrast, reduced-motion)", field)
	}
	return nil
}

func lookupFontSize(s string) (theme.FontSize, bool) {
	for _, size := range theme.FontSizes() {
		if string(size) == s {
			return size, true
		}
	}
	return "", false
}

func printPrefs(w io.Writer, rec prefs.Record) {
	fmt.Fprintf(w, "Theme:          %s\n", rec.Theme)
	fmt.Fprintf(w, "Font size:      %s (%s)\n", rec.FontSize, rec.FontSize.Spec().Value)
	fmt.Fprintf(w, "High contrast:  %t\n", rec.HighContrast)
	fmt.Fprintf(w, "Reduced motion: %t\n", rec.ReducedMotion)
	fmt.Fprintf(w, "Accessibility:  %d/100\n", rec.AccessibilityScore())
}
