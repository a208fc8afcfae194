package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pacecalc/internal/calc"
	"pacecalc/internal/config"
	"pacecalc/internal/parse"
	"pacecalc/internal/render"
	"pacecalc/internal/tui"
)

const version = "1.0.0"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "pacecalc <value> <in|at> <value>",
	Short: "Pace calculator for runners",
	Long: `Calculate pace, time and distance from any two of the three, with splits,
projected race times and training zones.

Examples:
  pacecalc 10km in 45:00      calculate pace for 10km in 45 minutes
  pacecalc marathon at 4:30   calculate time for a marathon at 4:30 min/km
  pacecalc 1:30:00 at 5:00    calculate distance for 1:30:00 at 5:00 min/km

Distance formats: 5km, 10k, 21.0975km, marathon, half-marathon, 1mi
Time formats:     45:00, 1:30:00, 1h30m, 90m
Pace formats:     4:30, 5.5 (minutes per kilometer)`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCalc,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive calculator",
	RunE:  runInteractive,
}

func main() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	renderer := setup()

	in, err := routeArgs(args)
	if err != nil {
		return err
	}

	metrics, err := calc.Derive(in)
	if err != nil {
		return err
	}

	fmt.Println(renderer.Banner())
	fmt.Println(renderer.Report(metrics))
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	renderer := setup()

	app := tui.NewApp(renderer)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive mode: %w", err)
	}
	return nil
}

// routeArgs maps the "<value> in|at <value>" grammar onto the derivation
// input. "in" always means distance+time; "at" means pace, with the first
// value resolved as time or distance by the heuristic.
func routeArgs(args []string) (calc.Input, error) {
	first, preposition, second := args[0], args[1], args[2]

	switch preposition {
	case "in":
		return calc.Input{Distance: first, Time: second}, nil
	case "at":
		if parse.LooksLikeTime(first) {
			return calc.Input{Time: first, Pace: second}, nil
		}
		return calc.Input{Distance: first, Pace: second}, nil
	default:
		return calc.Input{}, fmt.Errorf("expected \"in\" or \"at\", got %q", preposition)
	}
}

// setup loads display preferences and builds the renderer. A missing config
// file means defaults; a broken one is reported but does not block the run.
func setup() *render.Renderer {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	colored := colorEnabled(cfg)
	color.NoColor = !colored

	return render.New(render.Options{
		Colored:      colored,
		ShowInsights: cfg.Display.ShowInsights == nil || *cfg.Display.ShowInsights,
		Chart:        cfg.Display.Chart == nil || *cfg.Display.Chart,
	})
}

func colorEnabled(cfg *config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Display.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}
