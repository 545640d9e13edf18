package main

import (
	"log"
	"os"

	"github.com/xiam/sedlet/ast"
	"github.com/xiam/sedlet/parser"
)

func main() {
	input := `S~(\w+)@example\.com~\1@example.org~mg`

	cmd, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, cmd)
}
