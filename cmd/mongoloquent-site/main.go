package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ajatdarojat45/mongoloquent.com/cmd/mongoloquent-site/commands"
	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("mongoloquent-site"),
		kong.Description("Build, check and preview the Mongoloquent website."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	adapter := errors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	os.Exit(adapter.HandleError(err))
}
