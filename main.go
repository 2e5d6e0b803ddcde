package main

import (
	"github.com/alecthomas/kong"

	"github.com/lexfmt/lexfmt/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("lexfmt"),
		kong.Description("Toolchain for the lex plain-text document format"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
