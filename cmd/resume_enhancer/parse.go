package main

import (
	"github.com/jonathan/resume-enhancer/internal/config"
	"github.com/jonathan/resume-enhancer/internal/observability"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	Input   inputOptions
	Output  string
	Verbose bool
}

var parseOpts parseOptions

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse enhancement text into the document read model JSON",
	Long:  "Segment enhancement text into sections, group the entry section and write the editable document as JSON that validates against the document schema.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(configPath)
		if err != nil {
			return err
		}
		parseOpts.Verbose = verbose || cfg.Verbose
		return runParse(cfg, parseOpts, commandStreams(cmd))
	},
}

func init() {
	addInputFlags(parseCmd, &parseOpts.Input)
	parseCmd.Flags().StringVarP(&parseOpts.Output, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cfg config.Config, opts parseOptions, w streams) error {
	sess, err := loadSession(cfg, opts.Input)
	if err != nil {
		return err
	}

	if opts.Verbose {
		view, err := sessionView(sess)
		if err != nil {
			return err
		}
		p := observability.NewPrinter(w.Err)
		p.PrintDocument(&view)
		p.PrintEntries(&view)
	}

	data, err := renderDocument(sess, outputJSON)
	if err != nil {
		return err
	}
	return writeOutput(w.Out, opts.Output, data)
}
