// Package main is the entry point for dbctl, the QuoteMaster database
// administration utility.
package main

import (
	"quotemaster/dbctl/cmd"
)

func main() {
	cmd.Execute()
}
