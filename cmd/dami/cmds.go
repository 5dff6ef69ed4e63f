// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/dami/adapters/delim"
	"cogentcore.org/dami/base/errors"
	"cogentcore.org/dami/column"
	"cogentcore.org/dami/config"
	"cogentcore.org/dami/logx"
	"cogentcore.org/dami/table"
	"github.com/spf13/cobra"
)

// flags are the flags shared by all commands.
type flags struct {
	config  string
	vv      bool
	v       bool
	q       bool
	delim   string
	headers string
	comment string
	nrows   int
	sample  int
}

func newRoot() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:          "dami",
		Short:        "Inspect delimited data files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return fl.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.config, "config", "", "settings file (.toml, .yaml or .yml)")
	pf.BoolVar(&fl.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.v, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&fl.q, "quiet", "q", false, "only log errors")
	pf.StringVarP(&fl.delim, "delim", "d", "detect", "delimiter: comma, tab, space or detect")
	pf.StringVar(&fl.headers, "headers", "first", "header row: first, none or infer")
	pf.StringVar(&fl.comment, "comment", "", "comment character; lines starting with it are skipped")
	pf.IntVar(&fl.nrows, "nrows", 0, "maximum number of rows read, 0 for all")
	pf.IntVar(&fl.sample, "sample", 0, "number of values used to infer column types, 0 for the configured size")

	addCommands(root, fl)
	return root
}

// setup loads the settings and installs the logger.
func (fl *flags) setup(cmd *cobra.Command) error {
	st := config.Defaults()
	if fl.config != "" {
		var err error
		st, err = config.Open(fl.config)
		if err != nil {
			return err
		}
	}
	config.SetCurrent(st)
	level := st.LogLevel()
	if fl.vv || fl.v || fl.q {
		level = logx.LevelFromFlags(fl.vv, fl.v, fl.q)
	}
	logx.SetDefault(cmd.ErrOrStderr(), level)
	return nil
}

// options returns the read options for the flags.
func (fl *flags) options() (delim.Options, error) {
	opts := delim.DefaultOptions()
	if err := opts.Delim.SetString(fl.delim); err != nil {
		return opts, err
	}
	switch fl.headers {
	case "first":
		opts.Headers = delim.FirstRow
	case "none":
		opts.Headers = delim.NoHeaders
	case "infer":
		opts.Headers = delim.InferHeaders
	default:
		return opts, fmt.Errorf("invalid --headers %q: must be first, none or infer", fl.headers)
	}
	if fl.comment != "" {
		opts.Comment = []rune(fl.comment)[0]
	}
	opts.NRows = fl.nrows
	if fl.sample > 0 {
		opts.Ingest.SampleSize = fl.sample
	}
	return opts, nil
}

// open reads the named file with the options of the flags.
func (fl *flags) open(filename string) (*table.Table, error) {
	opts, err := fl.options()
	if err != nil {
		return nil, err
	}
	dt, err := delim.Open(filename, opts)
	if err != nil {
		return nil, err
	}
	slog.Info("read table", "file", filename, "rows", dt.NumRows(), "columns", dt.NumColumns())
	return dt, nil
}

func addCommands(root *cobra.Command, fl *flags) {
	var n int
	var html bool
	cmd := &cobra.Command{
		Use:   "head file",
		Short: "Print the first rows of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fl.open(args[0])
			if err != nil {
				return err
			}
			rows := min(n, dt.NumRows())
			if html {
				return dt.HeadHTML(cmd.OutOrStdout(), rows)
			}
			return dt.Head(cmd.OutOrStdout(), rows)
		}}
	cmd.Flags().IntVarP(&n, "rows", "n", 5, "number of rows")
	cmd.Flags().BoolVar(&html, "html", false, "print as an HTML table")
	root.AddCommand(cmd)

	var tn int
	var thtml bool
	cmd = &cobra.Command{
		Use:   "tail file",
		Short: "Print the last rows of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fl.open(args[0])
			if err != nil {
				return err
			}
			rows := min(tn, dt.NumRows())
			if thtml {
				return dt.TailHTML(cmd.OutOrStdout(), rows)
			}
			return dt.Tail(cmd.OutOrStdout(), rows)
		}}
	cmd.Flags().IntVarP(&tn, "rows", "n", 5, "number of rows")
	cmd.Flags().BoolVar(&thtml, "html", false, "print as an HTML table")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "dtypes file",
		Short: "Print the type of each column of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fl.open(args[0])
			if err != nil {
				return err
			}
			return dtypes(dt).Print(cmd.OutOrStdout())
		}}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "describe file",
		Short: "Print summary statistics of the numeric columns of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fl.open(args[0])
			if err != nil {
				return err
			}
			ds, err := dt.Describe()
			if err != nil {
				return err
			}
			return ds.Print(cmd.OutOrStdout())
		}}
	root.AddCommand(cmd)

	var out string
	cmd = &cobra.Command{
		Use:   "convert file",
		Short: "Rewrite a file with typed headers, compressed per the output extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fl.open(args[0])
			if err != nil {
				return err
			}
			if err := delim.Save(dt, out, delim.Detect); err != nil {
				return err
			}
			slog.Info("saved table", "file", out)
			return nil
		}}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.csv, .tsv, optionally with .gz, .lz4 or .zst)")
	errors.Log(cmd.MarkFlagRequired("output"))
	root.AddCommand(cmd)
}

// dtypes returns a table with the type of each column
// of dt, labeled by the column names.
func dtypes(dt *table.Table) *table.Table {
	names := dt.Names()
	tps := make([]string, len(names))
	for i, nm := range names {
		tp, _ := dt.DType(nm)
		tps[i] = tp.String()
	}
	out := table.New()
	if len(names) == 0 {
		return out
	}
	errors.Log(table.Add(out, column.NewNamed("dtype", tps), true))
	out.Reindex(names)
	return out
}
