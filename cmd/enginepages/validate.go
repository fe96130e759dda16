package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/validation"
)

var (
	validateFile   string
	validateSchema string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the content table",
	Long: `Check every engine page in the built-in table: document shape against
the engine-page JSON schema, FAQ and reliability sections against their
JSON-LD copies, compatible-model rows and links.

With --file, validate an exported JSON or YAML document instead.
Exits non-zero when any issue is found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "JSON or YAML document to validate instead of the table")
	validateCmd.Flags().StringVar(&validateSchema, "schema", validation.SchemaEnginePage, "schema for --file")
	rootCmd.AddCommand(validateCmd)
}

var errIssues = errors.New("validation failed")

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	color := isTerminal(out)

	if validateFile != "" {
		return validateDocument(out, validateFile, validateSchema, color)
	}

	report := validation.Check(content.Default())
	writeReport(out, report, color)
	if !report.OK() {
		return errIssues
	}
	return nil
}

func validateDocument(w io.Writer, path, schema string, color bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = validation.ValidateYAML(schema, data)
	default:
		err = validation.ValidateDocument(schema, data)
	}
	st := newStyles(color)
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(w, st.bad.Render("✗ "+path))
		for _, e := range verr.Errors {
			fmt.Fprintln(w, "  "+e)
		}
		return errIssues
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, st.good.Render("✓ "+path+" matches "+schema))
	return nil
}

type styles struct {
	good, bad, page, field, dim lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	return styles{
		good:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		page:  lipgloss.NewStyle().Bold(true).Underline(true),
		field: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		dim:   lipgloss.NewStyle().Faint(true),
	}
}

// writeReport prints issues grouped by page followed by a one-line summary.
func writeReport(w io.Writer, r validation.Report, color bool) {
	st := newStyles(color)
	byPage := r.ByPage()
	for _, key := range r.PageKeys() {
		fmt.Fprintln(w, st.page.Render(key))
		for _, iss := range byPage[key] {
			fmt.Fprintf(w, "  %s %s\n", st.field.Render(iss.Field), iss.Message)
		}
	}
	summary := fmt.Sprintf("%d pages checked, %d issues", r.Pages, len(r.Issues))
	if r.OK() {
		fmt.Fprintln(w, st.good.Render("✓ "+summary))
		return
	}
	fmt.Fprintln(w, st.bad.Render("✗ "+summary))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
