// Package cli implements the deviceframe command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/devices"
	"github.com/gogpu/deviceframe/internal/config"
	"github.com/gogpu/deviceframe/internal/ui"
	"github.com/spf13/cobra"

	// Output formats.
	_ "github.com/gogpu/deviceframe/recording/backends/raster"
	_ "github.com/gogpu/deviceframe/recording/backends/svg"
)

// app is the state shared by every command of one invocation.
type app struct {
	verbose    bool
	configPath string

	cfg     *config.Config
	catalog *deviceframe.Catalog
	ui      *ui.Renderer
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "deviceframe",
		Short: "Frame screenshots in device mockups",
		Long: `deviceframe draws phone, tablet, laptop and monitor frames around
screenshots and writes them as PNG or SVG.

Common workflows:
  deviceframe list iphone                 Find a device
  deviceframe render ios_phone_iphone-13 -i shot.png
  deviceframe render pixel -i shot.png -w Re-render when shot.png changes
  deviceframe batch -i shot.png -d out    Frame one screenshot on every device`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/deviceframe/config.yaml)")

	root.AddCommand(a.listCmd())
	root.AddCommand(a.infoCmd())
	root.AddCommand(a.renderCmd())
	root.AddCommand(a.batchCmd())
	root.AddCommand(a.backendsCmd())

	return root
}

// Execute runs the command line.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	deviceframe.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	a.ui = ui.NewRendererTo(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	custom, err := cfg.BuildDevices()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	catalog, err := devices.Load(custom...)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.catalog = catalog
	return nil
}
