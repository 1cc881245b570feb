package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-enhancer/internal/config"
	"github.com/jonathan/resume-enhancer/internal/observability"
	"github.com/jonathan/resume-enhancer/internal/session"
	"github.com/spf13/cobra"
)

type editKind int

const (
	editFragment editKind = iota
	editEntryHeader
	editEntryDetail
	editContactValue
)

// editSpec is one --set flag: an address and the value to store there.
type editSpec struct {
	Address  string
	Kind     editKind
	Title    string
	Position int
	Detail   int
	Value    string
}

// parseEditSpec parses ADDRESS=VALUE where ADDRESS is one of
//
//	Title[position]
//	Title[position].header
//	Title[position].details[index]
//	Title[position].value
//
// A literal \n in VALUE becomes a newline.
func parseEditSpec(s string) (editSpec, error) {
	addr, value, ok := strings.Cut(s, "=")
	if !ok {
		return editSpec{}, fmt.Errorf("edit %q: expected ADDRESS=VALUE", s)
	}

	open := strings.Index(addr, "[")
	end := strings.Index(addr, "]")
	if open <= 0 || end < open {
		return editSpec{}, fmt.Errorf("edit %q: expected Title[position]", s)
	}
	position, err := strconv.Atoi(addr[open+1 : end])
	if err != nil {
		return editSpec{}, fmt.Errorf("edit %q: position must be an integer", s)
	}

	spec := editSpec{
		Address:  addr,
		Kind:     editFragment,
		Title:    strings.TrimSpace(addr[:open]),
		Position: position,
		Detail:   -1,
		Value:    strings.ReplaceAll(value, `\n`, "\n"),
	}

	switch suffix := addr[end+1:]; {
	case suffix == "":
	case suffix == ".header":
		spec.Kind = editEntryHeader
	case suffix == ".value":
		spec.Kind = editContactValue
	case strings.HasPrefix(suffix, ".details[") && strings.HasSuffix(suffix, "]"):
		detail, err := strconv.Atoi(suffix[len(".details[") : len(suffix)-1])
		if err != nil {
			return editSpec{}, fmt.Errorf("edit %q: detail must be an integer", s)
		}
		spec.Kind = editEntryDetail
		spec.Detail = detail
	default:
		return editSpec{}, fmt.Errorf("edit %q: unknown part %q", s, suffix)
	}

	return spec, nil
}

func (e editSpec) apply(sess *session.Session) error {
	edit := session.Edit{Title: e.Title, Position: e.Position, Value: e.Value}
	switch e.Kind {
	case editEntryHeader:
		return sess.ApplyEntryHeader(edit)
	case editEntryDetail:
		return sess.ApplyEntryDetail(edit, e.Detail)
	case editContactValue:
		return sess.ApplyContactValue(edit)
	default:
		return sess.Apply(edit)
	}
}

type editOptions struct {
	Input   inputOptions
	Output  string
	As      string
	Sets    []string
	Verbose bool
}

var editOpts editOptions

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Apply fragment edits to enhancement text and print the result",
	Long: `Load enhancement text, apply each --set edit in order and write the edited document.

Addresses name a section title and fragment position:
  --set 'Skills[0]=Go'
  --set 'Experience[1].header=Staff Engineer | Acme | 2021'
  --set 'Experience[1].details[0]=Led the platform team'
  --set 'Contact Information[0].value=new@example.com'

If any edit targets an address that does not exist, nothing is written.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(configPath)
		if err != nil {
			return err
		}
		editOpts.Verbose = verbose || cfg.Verbose
		return runEdit(cfg, editOpts, commandStreams(cmd))
	},
}

func init() {
	addInputFlags(editCmd, &editOpts.Input)
	editCmd.Flags().StringVarP(&editOpts.Output, "out", "o", "", "Path to output file (default: stdout)")
	editCmd.Flags().StringVar(&editOpts.As, "as", outputJSON, "Output format: json, text or html")
	editCmd.Flags().StringArrayVar(&editOpts.Sets, "set", nil, "Edit as ADDRESS=VALUE (repeatable)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cfg config.Config, opts editOptions, w streams) error {
	specs := make([]editSpec, 0, len(opts.Sets))
	for _, s := range opts.Sets {
		spec, err := parseEditSpec(s)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	sess, err := loadSession(cfg, opts.Input)
	if err != nil {
		return err
	}

	outcomes := make([]observability.EditOutcome, 0, len(specs))
	var errs []error
	for _, spec := range specs {
		err := spec.apply(sess)
		outcomes = append(outcomes, observability.EditOutcome{Address: spec.Address, Err: err})
		if err != nil {
			errs = append(errs, err)
		}
	}

	if opts.Verbose {
		observability.NewPrinter(w.Err).PrintEdits(outcomes)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d edits rejected: %w", len(errs), len(specs), errors.Join(errs...))
	}

	data, err := renderDocument(sess, opts.As)
	if err != nil {
		return err
	}
	return writeOutput(w.Out, opts.Output, data)
}
