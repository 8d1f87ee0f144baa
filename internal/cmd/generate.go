package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
	"github.com/MeKo-Tech/heightmap/internal/summary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single heightmap",
	Long:  `Generate one Diamond-Square heightmap for a size and seed and report its statistics.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("size", "n", 8, fmt.Sprintf("Size parameter n; grid side is 2^n+1 (1..%d)", heightmap.MaxSize))
	generateCmd.Flags().Int64("seed", 1337, "Deterministic seed for the random source")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.size", "size"},
		{"generate.seed", "seed"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	size := viper.GetInt("generate.size")
	seed := viper.GetInt64("generate.seed")

	if logger == nil {
		initLogging()
	}

	s, err := generateOne(size, seed)
	if err != nil {
		return err
	}

	logger.Info("Heightmap generated",
		"size", size,
		"seed", seed,
		"side", s.Side,
		"min", s.Min,
		"max", s.Max,
		"mean", fmt.Sprintf("%.4f", s.Mean),
		"stddev", fmt.Sprintf("%.4f", s.StdDev),
		"roughness", fmt.Sprintf("%.4f", s.Roughness),
		"corners", fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", s.Corners[0], s.Corners[1], s.Corners[2], s.Corners[3]),
	)
	return nil
}

func generateOne(size int, seed int64) (summary.Summary, error) {
	if _, err := heightmap.SideFor(size); err != nil {
		return summary.Summary{}, err
	}

	logger.Info("Starting heightmap generation", "size", size, "seed", seed)

	gen := &heightmap.Generator{Logger: logger}
	grid, err := gen.Generate(size, heightmap.NewSource(seed))
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to generate heightmap: %w", err)
	}
	return summary.Of(grid), nil
}
