package main

import (
	"os"

	"github.com/arthur-debert/tplgen/cmd/tplgen"
)

func main() {
	os.Exit(tplgen.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
