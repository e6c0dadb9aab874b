package cmd

import (
	"flag"
	"strings"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: the global
// flags of fs and every registered subcommand with its flags.
func Completion(fs *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Flags: predictFlags(fs),
		Sub:   map[string]*complete.Command{},
	}
	for _, cmd := range commands() {
		sub := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(sub)
		c.Sub[cmd.Name()] = &complete.Command{Flags: predictFlags(sub)}
	}
	return c
}

type boolFlag interface{ IsBoolFlag() bool }

// predictFlags guesses a predictor for each flag from its name.
func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBool(f):
			flags[f.Name] = predict.Nothing
		case f.Name == "config":
			flags[f.Name] = predict.Files("*.toml")
		case f.Name == "png":
			flags[f.Name] = predict.Files("*.png")
		case f.Name == "cutoff":
			flags[f.Name] = predict.Set{"literal", "chronological"}
		case f.Name == "log-level":
			flags[f.Name] = predict.Set{"debug", "info", "warn", "error"}
		case f.Name == "ledger" || f.Name == "prices" || strings.HasSuffix(f.Name, "-out"):
			flags[f.Name] = predict.Files("*.json")
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(boolFlag)
	return ok && b.IsBoolFlag()
}
