package main

import (
	"fmt"

	"github.com/jonathan/resume-enhancer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort  int
	serveInput inputOptions
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that holds one editable document and exposes endpoints to load, read and edit it.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config port or 8080)")
	serveCmd.Flags().StringVarP(&serveInput.Path, "in", "i", "", "Enhancement text file to load at startup")
	serveCmd.Flags().StringVar(&serveInput.Format, "format", "", "Input format: text, markdown or html (default: from file extension)")
	serveCmd.Flags().BoolVar(&serveInput.Analysis, "analysis", false, "Treat --in as an analysis response JSON payload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	sess := newSession(cfg)
	if serveInput.Path != "" {
		if err := loadInto(sess, cfg, serveInput); err != nil {
			return err
		}
	}

	srv, err := server.New(server.Config{
		Port:    port,
		Session: sess,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}
