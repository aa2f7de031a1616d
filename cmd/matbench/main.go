// Package main provides the matbench CLI entry point.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/katalvlaran/strassen/internal/bench"
	"github.com/katalvlaran/strassen/matrix"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag defaults read the MATBENCH_*
// environment at build time.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matbench",
		Short: "Compare naive and Strassen matrix multiplication",
		Long: `matbench multiplies random square float32 matrices with the naive
triple loop and with Strassen's seven-product recursion, and reports timings
for both together with matrix-vector product and maximum search.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matbench v%s (%s) %s/%s\n", version, commit, runtime.GOOS, runtime.GOARCH)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "lanes",
		Short: "Print the detected vector lane width",
		Run: func(cmd *cobra.Command, args []string) {
			info := vek32.Info()
			features := append([]string(nil), info.CPUFeatures...)
			sort.Strings(features)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lane width:   %d float32\n", matrix.NativeLaneWidth())
			fmt.Fprintf(out, "arch:         %s\n", info.CPUArchitecture)
			fmt.Fprintf(out, "features:     %s\n", strings.Join(features, " "))
			fmt.Fprintf(out, "acceleration: %v\n", info.Acceleration)
		},
	})

	d := bench.DefaultConfig()
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Time naive vs Strassen multiplication",
		RunE:  runBench,
	}
	runCmd.Flags().Int("size", getEnvInt("MATBENCH_SIZE", d.Size), "Matrix size N (N×N)")
	runCmd.Flags().Int("threshold", getEnvInt("MATBENCH_THRESHOLD", d.Threshold), "Size at or below which Strassen multiplies naively")
	runCmd.Flags().Int64("seed", int64(getEnvInt("MATBENCH_SEED", int(d.Seed))), "Random seed")
	runCmd.Flags().Int("repeat", d.Repeat, "Repetitions per kernel (best time is reported)")
	runCmd.Flags().Int("max", d.Max, "Exclusive upper bound of random values")
	runCmd.Flags().Bool("verify", false, "Check that both products agree")
	runCmd.Flags().Bool("print", false, "Print operands and results")
	runCmd.Flags().Bool("pad", d.Pad, "Zero-pad sizes that cannot be halved down to the threshold")
	runCmd.Flags().String("plan", "", "YAML plan file with a list of runs (overrides the other flags)")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

// configFromFlags maps the run flags onto a bench.Config.
func configFromFlags(cmd *cobra.Command) bench.Config {
	var cfg bench.Config
	cfg.Size, _ = cmd.Flags().GetInt("size")
	cfg.Threshold, _ = cmd.Flags().GetInt("threshold")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.Repeat, _ = cmd.Flags().GetInt("repeat")
	cfg.Max, _ = cmd.Flags().GetInt("max")
	cfg.Verify, _ = cmd.Flags().GetBool("verify")
	cfg.Print, _ = cmd.Flags().GetBool("print")
	cfg.Pad, _ = cmd.Flags().GetBool("pad")

	return cfg
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := log.New(cmd.ErrOrStderr(), "matbench: ", 0)
	out := cmd.OutOrStdout()

	planPath, _ := cmd.Flags().GetString("plan")
	if planPath != "" {
		plan, err := bench.LoadPlan(planPath)
		if err != nil {
			return err
		}
		logger.Printf("plan %s: %d runs", planPath, len(plan.Runs))
		results, err := bench.RunPlan(ctx, plan)
		for _, res := range results {
			report(logger, out, res)
		}
		return err
	}

	res, err := bench.Run(ctx, configFromFlags(cmd))
	if err != nil {
		return err
	}
	report(logger, out, res)

	return nil
}

func report(logger *log.Logger, out io.Writer, res *bench.Result) {
	c := res.Config
	logger.Printf("n=%d threshold=%d seed=%d repeat=%d pad=%v", c.Size, c.Threshold, c.Seed, c.Repeat, c.Pad)
	logger.Printf("  naive     %v", res.Timings.Naive)
	logger.Printf("  strassen  %v", res.Timings.Strassen)
	logger.Printf("  matvec    %v", res.Timings.MatVec)
	logger.Printf("  findmax   %v (%g at %d,%d)", res.Timings.FindMax, res.Max.Value, res.Max.Row, res.Max.Col)
	if res.Verified {
		if res.LaneWidth > 0 {
			logger.Printf("  verified (lane layout width %d)", res.LaneWidth)
		} else {
			logger.Printf("  verified")
		}
	}

	if c.Print {
		fmt.Fprintf(out, "A:\n%s", res.A)
		fmt.Fprintf(out, "B:\n%s", res.B)
		fmt.Fprintf(out, "A·B (strassen):\n%s", res.Strassen)
		fmt.Fprintf(out, "x: %s\n", bench.FormatVector(res.Vector))
		fmt.Fprintf(out, "A·x: %s\n", bench.FormatVector(res.Product))
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
