package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	lirs "github.com/sjiang/lirssim"
	"github.com/sjiang/lirssim/internal/driver"
	"github.com/sjiang/lirssim/internal/report"
	"github.com/sjiang/lirssim/internal/tracefile"
)

type logLevelFlag struct {
	logrus.Level
}

func (f *logLevelFlag) Type() string { return "loglevel" }
func (f *logLevelFlag) Set(str string) error {
	lvl, err := logrus.ParseLevel(str)
	if err != nil {
		return err
	}
	f.Level = lvl
	return nil
}

var _ pflag.Value = (*logLevelFlag)(nil)

func main() {
	var (
		verbosity = logLevelFlag{Level: logrus.InfoLevel}
		cfg       = lirs.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "lirssim file_name_prefix",
		Short: "Replay a reference trace through the LIRS cache replacement policy",
		Long: "lirssim reads file_name_prefix.trc (trace) and file_name_prefix.par\n" +
			"(cache sizes), runs one LIRS replay per size, and writes\n" +
			"file_name_prefix_LIRS.cuv (hit-rate curve) and\n" +
			"file_name_prefix_LIRS.sln (stack-occupancy samples for the last size).",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.StandardLogger()
			log.SetLevel(verbosity.Level)
			return run(args[0], cfg, log)
		},
	}

	cmd.PersistentFlags().Var(&verbosity, "verbosity", "set the log verbosity (panic, fatal, error, warn, info, debug, trace)")
	cmd.PersistentFlags().Float64Var(&cfg.HIRRatePercent, "hir-rate", cfg.HIRRatePercent, "percentage of capacity reserved for resident HIR blocks")
	cmd.PersistentFlags().IntVar(&cfg.MinHIR, "min-hir", cfg.MinHIR, "floor on the HIR capacity regardless of hir-rate")
	cmd.PersistentFlags().IntVar(&cfg.MaxSLen, "max-s-len", cfg.MaxSLen, "bound on stack S length (0 = unbounded)")
	cmd.PersistentFlags().Uint64Var(&cfg.StatStart, "stat-start", cfg.StatStart, "number of leading references excluded from hit-rate statistics")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lirssim:", err)
		os.Exit(1)
	}
}

func run(prefix string, cfg lirs.Config, log *logrus.Logger) error {
	traceFile, err := os.Open(prefix + ".trc")
	if err != nil {
		return err
	}
	defer traceFile.Close()

	paramFile, err := os.Open(prefix + ".par")
	if err != nil {
		return err
	}
	defer paramFile.Close()

	trace, err := tracefile.ReadTrace(traceFile)
	if err != nil {
		return fmt.Errorf("reading trace: %w", err)
	}
	sizes, err := tracefile.ReadSizes(paramFile)
	if err != nil {
		return fmt.Errorf("reading parameters: %w", err)
	}

	result, err := driver.Run(trace, sizes, driver.Options{Config: cfg, Log: log})
	if err != nil {
		return err
	}

	curveFile, err := os.Create(prefix + "_LIRS.cuv")
	if err != nil {
		return err
	}
	defer curveFile.Close()
	if err := report.WriteCurve(curveFile, result.Curve); err != nil {
		return fmt.Errorf("writing curve file: %w", err)
	}

	slnFile, err := os.Create(prefix + "_LIRS.sln")
	if err != nil {
		return err
	}
	defer slnFile.Close()
	if err := report.WriteSamples(slnFile, result.Samples); err != nil {
		return fmt.Errorf("writing samples file: %w", err)
	}

	return nil
}
