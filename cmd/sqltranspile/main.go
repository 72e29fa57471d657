// Command sqltranspile is a thin CLI wrapper around the sqltranspile
// library: it holds the input text and dialect names, calls
// Parse/Transpile, and prints the result. It performs no parsing or
// generation of its own.
package main

import (
	"log"
	"os"

	"github.com/sqltranspile/sqltranspile/cmd/sqltranspile/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
