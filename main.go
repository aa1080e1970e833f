package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BrewLake/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("brewlake"), kong.Description("BrewLake builds a brewery star-schema warehouse from the Open Brewery DB API."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
