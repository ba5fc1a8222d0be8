package main

import "github.com/lexibook/wordsearch-go/internal/cli"

func main() {
	cli.Execute()
}
