package main

import (
	"log"
	"os"
	"strings"

	"github.com/xiam/sedlet"
	"github.com/xiam/sedlet/source"
)

func main() {
	cmd, err := sedlet.Compile(`s/^(\w+)=(.*)$/\1: \2/mg`)
	if err != nil {
		log.Fatal("sedlet.Compile:", err)
	}

	sources := []source.Source{
		source.Reader("inline", strings.NewReader("name=sedlet\nversion=0.01")),
	}

	if err := sedlet.NewExecutor(os.Stdout).Run(cmd, sources); err != nil {
		log.Fatal("Run:", err)
	}
}
