package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridview/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts    Options
		noWatch bool
	)

	rootCmd := &cobra.Command{
		Use:          "gridview",
		Short:        "Pan, zoom and select cells on a grid",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Watch = !noWatch
			return run(cfg, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a gridview.yaml (embedded default when empty)")
	rootCmd.Flags().BoolVar(&opts.Debug, "debug", false, "show FPS overlay")
	rootCmd.Flags().BoolVarP(&opts.BaseMonitor, "base-monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	rootCmd.Flags().BoolVar(&opts.HideHUD, "no-hud", false, "start with the status panel hidden")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")

	rootCmd.AddCommand(newConfigCmd(&opts.ConfigPath))
	return rootCmd
}

func newConfigCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*path)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func run(cfg *config.Config, opts Options) error {
	if opts.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer game.Close()

	return ebiten.RunGame(game)
}
