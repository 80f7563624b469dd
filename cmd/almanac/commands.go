package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
	"seed-almanac/internal/diagnostic"
	"seed-almanac/internal/source"
)

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "almanac",
		Short: "Resolve seed numbers through an almanac's remapping tables",
		Long: `almanac reads a seed catalogue and the chain of range tables between
categories, and resolves values from one category to another.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&g.devLog, "dev-log", false, "human-readable development logging")
	pf.StringSliceVar(&g.chain, "chain", nil, "category order, first to last (default seed..location)")
	pf.IntVar(&g.workers, "workers", 0, "concurrent seed resolutions (default GOMAXPROCS)")
	pf.BoolVar(&g.strict, "strict", false, "reject almanacs that fail validation")

	root.AddCommand(
		newLocateCmd(g),
		newLowestCmd(g),
		newTraceCmd(g),
		newCheckCmd(g),
		newDumpCmd(g),
		newConvertCmd(),
	)

	return root
}

// setup loads config, logger and the almanac at path for cmd.
func setup(cmd *cobra.Command, g *globalFlags, path string) (*app, error) {
	return newApp(g, cmd.Flags().Changed, path)
}

func newLocateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "locate [almanac]",
		Short: "Print the terminal value of every seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, g, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			e, err := a.engine()
			if err != nil {
				return err
			}

			values, err := e.ResolveSeeds(cmd.Context(), a.almanac.Seeds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, v := range values {
				fmt.Fprintf(out, "%s -> %s\n", category.New(a.chain.First(), a.almanac.Seeds[i]), v)
			}

			return nil
		},
	}
}

func newLowestCmd(g *globalFlags) *cobra.Command {
	var ranges bool

	cmd := &cobra.Command{
		Use:   "lowest [almanac]",
		Short: "Print the lowest terminal value reachable from the seeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, g, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			e, err := a.engine()
			if err != nil {
				return err
			}

			var lowest category.Value
			if ranges {
				lowest, err = e.LowestInRanges(a.almanac.Seeds)
			} else {
				lowest, err = e.Lowest(cmd.Context(), a.almanac.Seeds)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), lowest.Magnitude())

			return nil
		},
	}

	cmd.Flags().BoolVar(&ranges, "ranges", false, "read seeds as (start, length) pairs")

	return cmd
}

func newTraceCmd(g *globalFlags) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "trace [almanac] [category] [magnitude]",
		Short: "Walk one value through the chain, printing every hop",
		Long: `trace walks a value from its category to --to (default: the first
category of the chain when starting elsewhere, the last otherwise).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := category.Parse(args[1])
			if err != nil {
				return err
			}

			m, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid magnitude %q: %w", args[2], err)
			}

			a, err := setup(cmd, g, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			target := a.chain.First()
			if from == target {
				target = a.chain.Last()
			}

			if to != "" {
				if target, err = category.Parse(to); err != nil {
					return err
				}
			}

			e, err := a.engine()
			if err != nil {
				return err
			}

			path, err := e.Trace(category.New(from, m), target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, v := range path {
				if i > 0 {
					fmt.Fprint(out, " -> ")
				}

				fmt.Fprint(out, v)
			}

			fmt.Fprintln(out)

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target category")

	return cmd
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [almanac]",
		Short: "Validate the almanac's tables against the chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, g, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			res := almanac.Validate(a.chain, a.almanac.Tables)
			printDiagnostics(cmd.OutOrStdout(), res)

			if !res.IsValid() {
				return fmt.Errorf("%w: %d error(s)", errInvalidAlmanac, len(res.Errors))
			}

			return nil
		},
	}
}

func printDiagnostics(w io.Writer, res *diagnostic.Diagnostics) {
	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(w, "%d error(s), %d warning(s), %d note(s)\n", len(res.Errors), len(res.Warnings), len(res.Infos))
}

func newDumpCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [almanac]",
		Short: "Print the parsed almanac structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, g, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
			fmt.Fprintf(cmd.OutOrStdout(), "chain: %s\n", a.chain)
			cfg.Fdump(cmd.OutOrStdout(), a.almanac)

			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "Rewrite an almanac as YAML or text, chosen by the output extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := source.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", errInvalidAlmanac, err)
			}

			if err := source.WriteFile(a, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", args[1], source.DetectFormat(args[1]))

			return nil
		},
	}
}
