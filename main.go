// Package main is the entry point for ytgrab.
package main

import (
	"github.com/samber/lo"
	"github.com/ytgrab/ytgrab/cmd"
	"github.com/ytgrab/ytgrab/config"
	"github.com/ytgrab/ytgrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
