package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/voxview/internal/app"
	"github.com/philipparndt/voxview/pkg/config"
	"github.com/philipparndt/voxview/pkg/volume"
	"github.com/philipparndt/voxview/version"
)

var (
	flagImages []string
	flagNx     []int
	flagNy     []int
	flagNz     []int
	flagSync   bool
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:     "voxview --image <file> --nx <n> --ny <n> --nz <n> [...]",
	Short:   "Orthogonal slice viewer for raw 3D scalar volumes",
	Long:    `voxview displays axis-aligned slices of one or more raw float32 volumes.
Each volume gets its own view with independent plane, slice, contrast
window, zoom and pan. Repeat --image together with --nx/--ny/--nz for
every volume.`,
	Version: version.GetVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		arena, err := loadVolumes()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return err
		}

		app.Run(app.NewSession(arena, cfg, flagSync))
		return nil
	},
}

// loadVolumes validates the flag cardinalities and loads every volume into
// the session arena. Any failure here is fatal before a window opens.
func loadVolumes() (*volume.Arena, error) {
	n := len(flagImages)
	if n == 0 {
		return nil, fmt.Errorf("at least one --image is required")
	}
	if len(flagNx) != n || len(flagNy) != n || len(flagNz) != n {
		return nil, fmt.Errorf("number of images (%d) must match number of dimension parameters (--nx %d, --ny %d, --nz %d)",
			n, len(flagNx), len(flagNy), len(flagNz))
	}

	arena := volume.NewArena()
	for i, path := range flagImages {
		ds, err := volume.Load(path, flagNx[i], flagNy[i], flagNz[i])
		if err != nil {
			return nil, fmt.Errorf("loading volume %d: %w", i, err)
		}
		arena.Add(ds)
	}
	return arena, nil
}

func init() {
	rootCmd.Flags().StringArrayVar(&flagImages, "image", nil, "volume data file (repeatable)")
	rootCmd.Flags().IntSliceVar(&flagNx, "nx", nil, "x dimension per volume")
	rootCmd.Flags().IntSliceVar(&flagNy, "ny", nil, "y dimension per volume")
	rootCmd.Flags().IntSliceVar(&flagNz, "nz", nil, "z dimension per volume")
	rootCmd.Flags().BoolVar(&flagSync, "sync", false, "synchronize contrast windows across all views")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "layout configuration file (YAML)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
