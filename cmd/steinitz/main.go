// Command steinitz solves an integer linear program described by a
// .ilp text file via the proximity-graph technique.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstrand-dev/steinitzgraph/config"
	"github.com/mstrand-dev/steinitzgraph/ilptext"
	"github.com/mstrand-dev/steinitzgraph/solver"
)

var (
	rootCmd = &cobra.Command{
		Use:   "steinitz",
		Short: "Solve small integer linear programs via the proximity-graph technique",
	}

	radiusMultiplier float64
	maxSweeps        int
	timeoutSeconds   int
	configPath       string
	jsonOutput       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	solveCmd.Flags().Float64Var(&radiusMultiplier, "radius-multiplier", 0, "scale the proximity radius up (>= 1.0; 0 uses config/default)")
	solveCmd.Flags().IntVar(&maxSweeps, "max-sweeps", 0, "cap relaxation passes (0 uses config/default)")
	solveCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "solve timeout in seconds (0 uses config/default)")
	solveCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	solveCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")

	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve <file.ilp>",
	Short: "Solve a single .ilp file and print its optimal solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
		}
		if radiusMultiplier > 0 {
			cfg.Engine.RadiusMultiplier = radiusMultiplier
		}
		if maxSweeps > 0 {
			cfg.Engine.MaxSweeps = maxSweeps
		}
		if timeoutSeconds > 0 {
			cfg.Engine.TimeoutSeconds = timeoutSeconds
		}

		parsed, err := ilptext.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Engine.TimeoutSeconds)*time.Second)
		defer cancel()

		res, err := solver.Solve(parsed,
			solver.WithContext(ctx),
			solver.WithRadiusMultiplier(maxFloat(cfg.Engine.RadiusMultiplier, 1.0)),
			solver.WithMaxSweeps(cfg.Engine.MaxSweeps),
			solver.WithOverflowCap(cfg.Engine.OverflowCap),
			solver.WithMaxParallelism(cfg.Engine.MaxParallelism),
		)
		if err != nil {
			return err
		}

		return printResult(res)
	},
}

func printResult(res solver.Result) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	}

	fmt.Printf("objective: %d\n", res.Objective)
	for _, v := range res.Variables {
		fmt.Printf("%s = %d\n", v.Name, v.Value)
	}
	fmt.Printf("vertices=%d edges=%d depth=%d sweeps=%d\n",
		res.Stats.Vertices, res.Stats.Edges, res.Stats.Depth, res.Stats.Sweeps)

	return nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// exitCodeFor maps a solve error onto a process exit code: 0 is reserved
// for success, so kinds are offset by 1.
func exitCodeFor(err error) int {
	var se *solver.SolveError
	if errors.As(err, &se) {
		return int(se.Kind) + 1
	}

	return 1
}
