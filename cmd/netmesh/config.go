package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"netmesh/internal/app"
	"netmesh/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0ECF8"))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#164776")).
			Padding(0, 1)
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or create configuration files",
	}

	flags := app.NewConfig()
	show := &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			out, err := formatConfig(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.Bind(show.Flags())

	var force bool
	initCmd := &cobra.Command{
		Use:   "init PATH",
		Short: "write the default configuration to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

// formatConfig renders cfg as YAML with styled section headers, keys and
// values inside a bordered panel.
func formatConfig(cfg *config.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		key, value, ok := strings.Cut(trimmed, ":")
		switch {
		case !ok:
			b.WriteString(line)
		case strings.TrimSpace(value) == "":
			b.WriteString(indent + sectionStyle.Render(key+":"))
		default:
			b.WriteString(indent + keyStyle.Render(key+":") + valueStyle.Render(value))
		}
	}
	return panelStyle.Render(b.String()), nil
}
