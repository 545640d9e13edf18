// Package sedlet applies a single sed-like scriptlet, such as s/old/new/g, to
// the full text of one or more sources.
//
// A scriptlet is compiled with the parser package and executed here:
//
//	cmd, err := parser.Parse(`s/needle/replacement/gi`)
//	if err != nil {
//		return err
//	}
//	err = sedlet.NewExecutor(os.Stdout).Run(cmd, sources)
package sedlet

import (
	"github.com/xiam/sedlet/ast"
	"github.com/xiam/sedlet/parser"
)

// Version of the command-line tool
const (
	Version    = "0.01"
	LastUpdate = "2023-11-14"
)

// Compile parses scriptlet and validates its pattern, so that both grammar
// and regular expression errors surface before any input is read.
func Compile(scriptlet string) (*ast.Command, error) {
	cmd, err := parser.Parse(scriptlet)
	if err != nil {
		return nil, err
	}
	if cmd.Operation() == ast.OperationSubstitute {
		if _, err := compilePattern(cmd); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}
