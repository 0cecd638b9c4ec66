// Package main is the entry point for the freetint application.
package main

import (
	"github.com/freetint-cli/freetint/cmd"
	"github.com/freetint-cli/freetint/config"
	"github.com/freetint-cli/freetint/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
