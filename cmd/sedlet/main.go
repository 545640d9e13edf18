package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	flags "github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/xiam/sedlet"
	"github.com/xiam/sedlet/source"
)

// Options defines CLI flags for sedlet.
type Options struct {
	Verbose       bool `short:"v" long:"verbose" env:"SEDLET_VERBOSE" description:"Log debug messages to stderr"`
	Version       bool `short:"V" long:"version" description:"Print version information and exit"`
	InPlace       bool `short:"i" long:"in-place" description:"Edit files in place (not supported)"`
	NoPassthrough bool `long:"no-passthrough" env:"SEDLET_NO_PASSTHROUGH" description:"Do not echo piped stdin after processing named files"`

	Args struct {
		Scriptlet string   `positional-arg-name:"scriptlet" description:"sed-like scriptlet, e.g. s/old/new/g"`
		Files     []string `positional-arg-name:"file" description:"Input files (default: stdin)"`
	} `positional-args:"yes"`
}

// environment holds everything run needs from the process.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	fs afero.Fs

	// stdinIsTerminal reports whether stdin is attached to a terminal
	stdinIsTerminal func() bool
}

func processEnvironment() *environment {
	return &environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:], processEnvironment()))
}

func newLogger(env *environment, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(env.stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(args []string, env *environment) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "sedlet"
	parser.Usage = "[OPTIONS] scriptlet [file...]"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(env.stdout, err)
			return 0
		}
		fmt.Fprintln(env.stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(env.stdout, "sedlet %s (%s)\n", sedlet.Version, sedlet.LastUpdate)
		return 0
	}

	logger := newLogger(env, opts.Verbose)
	logger.Debug("verbosity on")

	if opts.Args.Scriptlet == "" {
		parser.WriteHelp(env.stderr)
		return 1
	}

	if opts.InPlace {
		logger.Error("in-place editing is not supported")
		return 1
	}

	cmd, err := sedlet.Compile(opts.Args.Scriptlet)
	if err != nil {
		logger.WithError(err).Error("invalid scriptlet")
		return 1
	}
	logger.WithFields(log.Fields{
		"operation": cmd.Operation(),
		"pattern":   cmd.Pattern(),
		"flags":     cmd.Flags().String(),
	}).Debug("scriptlet compiled")

	sources, stdinConsumed := inputSources(env, opts.Args.Files)

	executor := sedlet.NewExecutor(env.stdout,
		sedlet.WithOutputName("<stdout>"),
		sedlet.WithLogger(logger),
	)
	if err := executor.Run(cmd, sources); err != nil {
		logger.WithError(err).Error("execution failed")
		return 1
	}

	// Piped stdin is echoed after named files have been processed, unless it
	// was one of the sources and is already drained.
	if !stdinConsumed && !opts.NoPassthrough && !env.stdinIsTerminal() {
		if err := passthrough(env.stdin, env.stdout); err != nil {
			logger.WithError(err).Error("stdin passthrough failed")
			return 1
		}
	}

	return 0
}

// inputSources maps file arguments to sources. A "-" argument, or no
// argument at all, stands for stdin.
func inputSources(env *environment, paths []string) ([]source.Source, bool) {
	if len(paths) == 0 {
		return []source.Source{source.Stdin(env.stdin)}, true
	}

	stdinConsumed := false
	sources := make([]source.Source, 0, len(paths))
	for _, path := range paths {
		if path == source.StdinName {
			sources = append(sources, source.Stdin(env.stdin))
			stdinConsumed = true
			continue
		}
		sources = append(sources, source.File(env.fs, path))
	}
	return sources, stdinConsumed
}

// passthrough copies r to w line by line with trailing whitespace removed.
func passthrough(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
