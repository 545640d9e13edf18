package main

import (
	"fmt"
	"log"

	"github.com/xiam/sedlet/lexer"
)

func main() {
	input := `s#/tmp/file\#1#/tmp/file2#gi`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Pos(), tok.Text())
	}
}
