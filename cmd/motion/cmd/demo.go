package cmd

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/term"
)

func newDemoCmd() *cobra.Command {
	var (
		durationFlag string
		effectFlag   string
		timingFlag   string
		textFlag     string
		pick         bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive transition demo in the terminal",
		Long: `Run a panel hosting one motion-controlled element. Press space to
toggle it in and out; the status line shows the live lifecycle phase.

Defaults come from motion.yaml in the current directory when present;
flags override it, and --pick opens a form instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.LoadOptional(".")
			if err != nil {
				return err
			}
			if err := cfg.RegisterPresets(); err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("duration") {
				d, err := time.ParseDuration(durationFlag)
				if err != nil {
					return fmt.Errorf("invalid --duration %q: %w", durationFlag, err)
				}
				opts.Duration = d
			}
			if cmd.Flags().Changed("effect") {
				opts.Effect = motion.Effect{Preset: effectFlag}
			}
			if cmd.Flags().Changed("timing") {
				opts.TimingFunction = timingFlag
			}

			if pick {
				if err := pickOptions(&opts); err != nil {
					return err
				}
			}

			text := cfg.Demo.Text
			if cmd.Flags().Changed("text") {
				text = textFlag
			}
			if strings.TrimSpace(text) == "" {
				text = "Hello from motion"
			}
			r, g, b := cfg.Accent()
			accent := color.RGBA{R: r, G: g, B: b, A: 0xFF}

			logger.Debug("starting demo",
				"duration", opts.Duration,
				"effect", opts.Effect.Preset,
				"timing", opts.TimingFunction)

			p := tea.NewProgram(
				term.NewPanel(opts, text, accent),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&durationFlag, "duration", "300ms", "transition duration (time.ParseDuration syntax)")
	cmd.Flags().StringVar(&effectFlag, "effect", motion.DefaultPreset, "effect preset name")
	cmd.Flags().StringVar(&timingFlag, "timing", motion.DefaultTiming, "CSS timing function")
	cmd.Flags().StringVar(&textFlag, "text", "", "panel content")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose options interactively")

	return cmd
}

// pickOptions runs a form over the registered presets and common timing
// functions, writing the selections into opts.
func pickOptions(opts *motion.Options) error {
	preset := opts.Effect.Preset
	if preset == "" {
		preset = motion.DefaultPreset
	}
	durationStr := ""
	timing := opts.TimingFunction
	if timing == "" {
		timing = motion.DefaultTiming
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Effect preset").
				Description("Keyframe pair applied across enter and exit").
				Options(huh.NewOptions(motion.PresetNames()...)...).
				Value(&preset),
			huh.NewInput().
				Title("Duration").
				Description("Length of both animations").
				Placeholder("300ms").
				Value(&durationStr).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := time.ParseDuration(strings.TrimSpace(s))
					return err
				}),
			huh.NewSelect[string]().
				Title("Timing function").
				Options(huh.NewOptions(
					"ease-in-out", "ease", "ease-in", "ease-out", "linear",
				)...).
				Value(&timing),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to get demo options: %w", err)
	}

	opts.Effect = motion.Effect{Preset: preset}
	opts.TimingFunction = timing
	if s := strings.TrimSpace(durationStr); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		opts.Duration = d
	}
	return nil
}
