// Command ossature assembles a building's structural mesh from a YAML
// definition file and writes the node/element collections as JSON for
// downstream solver tooling.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahertel/ossature/pkg/assemble"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ossature",
		Short:        "Structural skeleton mesh assembly",
		Long:         "ossature builds a finite-element mesh (nodes and elements) for a building's structural skeleton from a parametric YAML definition.",
		SilenceUsage: true,
	}
	root.AddCommand(buildCmd())
	root.AddCommand(versionCmd())
	return root
}

func buildCmd() *cobra.Command {
	var (
		defPath string
		outPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the mesh for a building definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync

			def, err := assemble.LoadFile(defPath)
			if err != nil {
				return err
			}

			m, err := assemble.NewBuilder(assemble.WithLogger(log)).Build(def)
			if err != nil {
				return err
			}

			stats := m.Stats()
			log.Info("model assembled",
				zap.Int("nodes", stats.Nodes),
				zap.Int("lines", stats.Lines),
				zap.Int("couplings", stats.Couplings),
				zap.Int("quads", stats.Quads),
				zap.Int("tris", stats.Tris),
			)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVarP(&defPath, "file", "f", "building.yaml", "building definition file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
