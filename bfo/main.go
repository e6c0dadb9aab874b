// Command bfo values a beancount portfolio month by month.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/beanfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	cmd.Register(subcommands.DefaultCommander)

	// exits when invoked by the shell for completion.
	cmd.Completion(flag.CommandLine).Complete("bfo")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
