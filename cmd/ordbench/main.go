/*
Command ordbench validates and benchmarks positional B-trees.

Usage:

	ordbench validate [--scenario build|drain|mixed|all] [--n N] [--base B] [--seed S]
	ordbench bench    [--n N] [--base B]
	ordbench dot      [--n N] [--base B] > tree.dot

Progress is printed while scenarios run. Output is colored if stdout is a
terminal.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/dstructs/internal/harness"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	n     int
	base  int
	seed  uint64
	ops   int
	trace string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ordbench",
		Short:         "Validate and benchmark positional B-trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.trace)
		},
	}
	flags := root.PersistentFlags()
	flags.IntVar(&opts.n, "n", 10000, "number of elements")
	flags.IntVar(&opts.base, "base", 6, "branching parameter B of the trees")
	flags.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flags.StringVar(&opts.trace, "trace", "error", "trace level (debug, info, error)")
	root.AddCommand(validateCmd(opts), benchCmd(opts), dotCmd(opts))
	return root
}

func (opts *options) config() harness.Config {
	return harness.Config{N: opts.n, Base: opts.base, Seed: opts.seed, Ops: opts.ops}
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer.SetTraceLevel(l)
	tracing.Select("dstructs").SetTraceLevel(l)
	return nil
}

// --- Output ----------------------------------------------------------------

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

func pass(format string, args ...any) {
	passColor.Print("PASS ")
	fmt.Printf(format+"\n", args...)
}

func fail(format string, args ...any) {
	failColor.Print("FAIL ")
	fmt.Printf(format+"\n", args...)
}

func info(format string, args ...any) {
	infoColor.Printf(format+"\n", args...)
}
