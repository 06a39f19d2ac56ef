package lint

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jssort/jssort/pkg/config"
	"github.com/jssort/jssort/pkg/errors"
	"github.com/jssort/jssort/pkg/parser"
	"github.com/jssort/jssort/pkg/utils"
)

// Runner drives the configured rules over files and directories.
type Runner struct {
	cfg    *config.Config
	parser *parser.Parser
	rules  []Rule
}

// NewRunner creates a Runner with the given configuration and rules.
func NewRunner(cfg *config.Config, rules ...Rule) *Runner {
	return &Runner{
		cfg:    cfg,
		parser: parser.New(),
		rules:  rules,
	}
}

// Result is the outcome of linting one file.
type Result struct {
	Path        string
	Diagnostics []Diagnostic
	source      []byte
}

// Report prints diagnostics in path:line:col form. Columns are stored
// 0-based and printed 1-based, matching the line numbering.
func (res *Result) Report(w io.Writer) {
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", res.Path, d.Line, d.Column+1, d.Message, d.Rule)
	}
}

// LintFile parses a single file and runs every rule over it.
func (r *Runner) LintFile(ctx context.Context, path string) (*Result, error) {
	prog, source, err := r.parser.ParseFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}

	res := &Result{Path: path, source: source}
	for _, rule := range r.rules {
		res.Diagnostics = append(res.Diagnostics, rule.Check(prog)...)
	}

	return res, nil
}

// FixFile lints path and writes the corrected source back when any rule
// offered a fix. It reports whether the file changed.
func (r *Runner) FixFile(ctx context.Context, path string) (bool, error) {
	res, err := r.LintFile(ctx, path)
	if err != nil {
		return false, err
	}

	fixed, changed := applyFixes(res.source, res.Diagnostics)
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, fixed, 0644); err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return true, nil
}

// applyFixes replaces fix ranges in the original source, rightmost first so
// earlier offsets stay valid.
func applyFixes(source []byte, diags []Diagnostic) ([]byte, bool) {
	var fixes []Fix
	for _, d := range diags {
		if d.Fix != nil {
			fixes = append(fixes, *d.Fix)
		}
	}
	if len(fixes) == 0 {
		return source, false
	}

	sort.Slice(fixes, func(i, j int) bool {
		return fixes[i].Range.Start > fixes[j].Range.Start
	})

	out := source
	for _, f := range fixes {
		var buf bytes.Buffer
		buf.Write(out[:f.Range.Start])
		buf.WriteString(f.Text)
		buf.Write(out[f.Range.End:])
		out = buf.Bytes()
	}
	return out, true
}

// processFile lints or fixes a single file, printing its diagnostics.
func (r *Runner) processFile(ctx context.Context, path string) (problems int, err error) {
	if r.cfg.Fix {
		changed, err := r.FixFile(ctx, path)
		if err != nil {
			return 0, err
		}
		if changed {
			fmt.Printf(errors.InfoMsgFixedFile+"\n", path)
		}
		return 0, nil
	}

	res, err := r.LintFile(ctx, path)
	if err != nil {
		return 0, err
	}
	res.Report(os.Stdout)
	return len(res.Diagnostics), nil
}

// processFiles lints multiple files with per-file error accounting.
func (r *Runner) processFiles(ctx context.Context, paths []string) error {
	processedCount := 0
	problemCount := 0
	errorCount := 0

	for _, path := range paths {
		problems, err := r.processFile(ctx, path)
		if err != nil {
			fmt.Printf(errors.InfoMsgErrorProcessing+"\n", path, err)
			errorCount++
			continue
		}
		processedCount++
		problemCount += problems
	}

	fmt.Printf(errors.InfoMsgProcessedCount, processedCount)
	if problemCount > 0 {
		fmt.Printf(errors.InfoMsgProblemCount, problemCount)
	}
	if errorCount > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// Run processes a file or directory path.
func (r *Runner) Run(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		problems, err := r.processFile(ctx, path)
		if err != nil {
			return err
		}
		if problems > 0 {
			return fmt.Errorf("%d problems found", problems)
		}
		return nil
	}

	if !r.cfg.Fix {
		fmt.Printf(errors.WarnMsgDirWithoutFix + "\n")
		fmt.Printf(errors.InfoMsgUseFixFlag + "\n\n")
	}

	files, err := utils.FindSourceFiles(path, r.cfg.Extensions, r.cfg.Exclude)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}

	if len(files) == 0 {
		fmt.Printf(errors.InfoMsgNoFilesFound+"\n", path)
		return nil
	}

	fmt.Printf(errors.InfoMsgFoundFiles+"\n\n", len(files), path)
	return r.processFiles(ctx, files)
}
