// Package main provides the distrib CLI.
package main

import "github.com/born-ml/distrib/internal/cli"

func main() {
	cli.Execute()
}
