package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-enhancer/internal/config"
	"github.com/jonathan/resume-enhancer/internal/rendering"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/spf13/cobra"
)

// Output formats for rendered documents.
const (
	outputJSON = "json"
	outputText = "text"
	outputHTML = "html"
)

type renderOptions struct {
	Input  inputOptions
	Output string
	As     string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render enhancement text as plain text or editable HTML",
	Long:  "Segment enhancement text and render the resulting document as reconstructed plain text or as HTML markup carrying per-fragment edit addresses.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(configPath)
		if err != nil {
			return err
		}
		return runRender(cfg, renderOpts, commandStreams(cmd))
	},
}

func init() {
	addInputFlags(renderCmd, &renderOpts.Input)
	renderCmd.Flags().StringVarP(&renderOpts.Output, "out", "o", "", "Path to output file (default: stdout)")
	renderCmd.Flags().StringVar(&renderOpts.As, "as", outputText, "Output format: text, html or json")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cfg config.Config, opts renderOptions, w streams) error {
	sess, err := loadSession(cfg, opts.Input)
	if err != nil {
		return err
	}

	data, err := renderDocument(sess, opts.As)
	if err != nil {
		return err
	}
	return writeOutput(w.Out, opts.Output, data)
}

// renderDocument renders the session document in the given output format.
func renderDocument(sess *session.Session, as string) ([]byte, error) {
	switch as {
	case outputJSON:
		view, err := sessionView(sess)
		if err != nil {
			return nil, err
		}
		jsonBytes, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(jsonBytes, '\n'), nil

	case outputText:
		doc, _, err := sess.View()
		if err != nil {
			return nil, err
		}
		return []byte(doc.Text() + "\n"), nil

	case outputHTML:
		view, err := sessionView(sess)
		if err != nil {
			return nil, err
		}
		html, err := rendering.RenderHTML(view)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil

	default:
		return nil, fmt.Errorf("unknown output format %q (want json, text or html)", as)
	}
}
