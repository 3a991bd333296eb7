package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/style"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List registered effect presets",
		Long: `List every registered effect preset with its from and to style bags.
Presets defined in motion.yaml in the current directory are included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(".")
			if err != nil {
				return err
			}
			if err := cfg.RegisterPresets(); err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle.Padding(0, 1)
					}
					return cellStyle
				}).
				Headers("PRESET", "FROM", "TO")

			for _, name := range motion.PresetNames() {
				kf, ok := motion.LookupPreset(name)
				if !ok {
					continue
				}
				t.Row(name, renderProps(kf.From), renderProps(kf.To))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

// renderProps flattens a style bag into "key: value; …" with sorted keys.
func renderProps(p style.Props) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, p[k]))
	}
	return strings.Join(parts, "; ")
}
