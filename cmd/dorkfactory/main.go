package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/URDev4ever/dorkfactory/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	if err := runner.Run(opts); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
