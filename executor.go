package sedlet

import (
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/xiam/sedlet/ast"
	"github.com/xiam/sedlet/source"
)

const defaultOutputName = "output"

// Option configures an Executor
type Option func(*Executor)

// WithOutputName sets the name reported when writing the output fails.
func WithOutputName(name string) Option {
	return func(e *Executor) {
		e.outputName = name
	}
}

// WithLogger sets the logger used for debug messages.
func WithLogger(logger log.FieldLogger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// Executor applies commands to sources and writes one result per source.
type Executor struct {
	w io.Writer

	outputName string
	logger     log.FieldLogger
}

// NewExecutor creates an executor that writes to w
func NewExecutor(w io.Writer, opts ...Option) *Executor {
	e := &Executor{
		w:          w,
		outputName: defaultOutputName,
		logger:     log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run applies cmd to every source in order. Each source is read in full
// before matching and its result is written followed by a newline. The
// first error aborts the run; results already written are kept.
func (e *Executor) Run(cmd *ast.Command, sources []source.Source) error {
	if cmd == nil {
		return ErrNilCommand
	}

	switch op := cmd.Operation(); op {
	case ast.OperationSubstitute:
		return e.substitute(cmd, sources)
	case ast.OperationDelete:
		return errors.Wrapf(ErrUnimplemented, "%v", op)
	default:
		return errors.Wrapf(ErrUnimplemented, "operation %v", op)
	}
}

func (e *Executor) substitute(cmd *ast.Command, sources []source.Source) error {
	re, err := compilePattern(cmd)
	if err != nil {
		return err
	}
	tmpl := expandTemplate(cmd.Replacement())
	global := cmd.Flags().Has(ast.FlagGlobal)

	for _, src := range sources {
		haystack, err := source.ReadAll(src)
		if err != nil {
			return &SourceError{Name: src.Name(), Err: err}
		}

		result := replace(re, haystack, tmpl, global)

		e.logger.WithFields(log.Fields{
			"source":  src.Name(),
			"bytes":   len(haystack),
			"changed": result != haystack,
		}).Debug("substituted")

		if _, err := io.WriteString(e.w, result+"\n"); err != nil {
			return &SourceError{Name: e.outputName, Err: errors.WithStack(err)}
		}
	}

	return nil
}

// Substitute applies a substitution command to text and returns the result.
func Substitute(cmd *ast.Command, text string) (string, error) {
	if cmd == nil {
		return "", ErrNilCommand
	}
	if cmd.Operation() != ast.OperationSubstitute {
		return "", errors.Wrapf(ErrUnimplemented, "%v", cmd.Operation())
	}

	re, err := compilePattern(cmd)
	if err != nil {
		return "", err
	}
	return replace(re, text, expandTemplate(cmd.Replacement()), cmd.Flags().Has(ast.FlagGlobal)), nil
}

func compilePattern(cmd *ast.Command) (*regexp.Regexp, error) {
	expr := cmd.Pattern()

	var mode strings.Builder
	if cmd.Flags().Has(ast.FlagIgnoreCase) {
		mode.WriteRune('i')
	}
	if cmd.Flags().Has(ast.FlagMultiLine) {
		mode.WriteRune('m')
	}
	if mode.Len() > 0 {
		expr = "(?" + mode.String() + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: cmd.Pattern(), Err: err}
	}
	return re, nil
}

func replace(re *regexp.Regexp, haystack string, tmpl string, global bool) string {
	if global {
		return re.ReplaceAllString(haystack, tmpl)
	}

	loc := re.FindStringSubmatchIndex(haystack)
	if loc == nil {
		return haystack
	}

	dst := re.ExpandString(nil, tmpl, haystack, loc)
	return haystack[:loc[0]] + string(dst) + haystack[loc[1]:]
}
