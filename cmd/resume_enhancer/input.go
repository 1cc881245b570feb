package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-enhancer/internal/config"
	"github.com/jonathan/resume-enhancer/internal/ingestion"
	"github.com/jonathan/resume-enhancer/internal/rendering"
	"github.com/jonathan/resume-enhancer/internal/schemas"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/jonathan/resume-enhancer/internal/types"
	schemafiles "github.com/jonathan/resume-enhancer/schemas"
	"github.com/spf13/cobra"
)

// inputOptions selects the enhancement text a command works on.
type inputOptions struct {
	Path     string
	Format   string // text, markdown or html; from the extension when empty
	Analysis bool   // Path holds an analysis response JSON payload
}

// streams are the writers a command prints to.
type streams struct {
	Out io.Writer
	Err io.Writer
}

func commandStreams(cmd *cobra.Command) streams {
	return streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

func addInputFlags(cmd *cobra.Command, in *inputOptions) {
	cmd.Flags().StringVarP(&in.Path, "in", "i", "", "Path to enhancement text file (required)")
	cmd.Flags().StringVar(&in.Format, "format", "", "Input format: text, markdown or html (default: from file extension)")
	cmd.Flags().BoolVar(&in.Analysis, "analysis", false, "Treat --in as an analysis response JSON payload")
}

// resolveConfig loads the config file when one is given and fills in defaults.
func resolveConfig(path string) (config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// newSession returns an Unloaded session configured from cfg.
func newSession(cfg config.Config) *session.Session {
	return session.New(cfg.Segmenter(), cfg.DocumentOptions())
}

// loadInto reads the input and loads it into sess.
func loadInto(sess *session.Session, cfg config.Config, in inputOptions) error {
	if in.Path == "" {
		return fmt.Errorf("--in is required")
	}

	if in.Analysis {
		resp, err := readAnalysis(in.Path)
		if err != nil {
			return err
		}
		sess.LoadAnalysis(resp, in.Path)
		return nil
	}

	format := in.Format
	if format == "" {
		format = cfg.Format
	}
	text, meta, err := ingestion.IngestFromFile(in.Path, format)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", in.Path, err)
	}
	sess.Load(text, meta)
	return nil
}

// readAnalysis reads and validates an analysis response payload.
func readAnalysis(path string) (*types.AnalysisResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}

	var resp types.AnalysisResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	if err := schemas.ValidateEmbedded(schemafiles.Analysis, data); err != nil {
		return nil, fmt.Errorf("analysis payload does not validate against schema: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis payload: %w", err)
	}
	return &resp, nil
}

// loadSession reads the input into a fresh session.
func loadSession(cfg config.Config, in inputOptions) (*session.Session, error) {
	sess := newSession(cfg)
	if err := loadInto(sess, cfg, in); err != nil {
		return nil, err
	}
	return sess, nil
}

// sessionView builds the validated read model of the session document.
func sessionView(sess *session.Session) (types.DocumentView, error) {
	doc, info, err := sess.View()
	if err != nil {
		return types.DocumentView{}, err
	}
	view := rendering.BuildSessionView(doc, info)
	if err := schemas.ValidateDocument(view); err != nil {
		return types.DocumentView{}, fmt.Errorf("document does not validate against schema: %w", err)
	}
	return view, nil
}

// writeOutput writes data to path, or to out when path is empty.
func writeOutput(out io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
