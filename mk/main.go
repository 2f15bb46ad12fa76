package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/moneykeeper/cmd"
)

// completion describes the command line for shell tab completion. It
// returns immediately unless invoked by the shell completion hook.
func completion() {
	kinds := predict.Set{"income", "expense"}
	accountFlags := map[string]complete.Predictor{"account": predict.Nothing}

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"t":       kinds,
				"a":       predict.Nothing,
				"c":       predict.Nothing,
				"cur":     predict.Nothing,
				"d":       predict.Nothing,
				"m":       predict.Nothing,
				"tag":     predict.Nothing,
				"account": predict.Nothing,
			}},
			"rm": {Flags: accountFlags},
			"tx": {Flags: map[string]complete.Predictor{
				"t":       kinds,
				"c":       predict.Nothing,
				"account": predict.Nothing,
			}},
			"accounts":       {},
			"create-account": {Flags: map[string]complete.Predictor{"select": predict.Nothing}},
			"delete-account": {},
			"rename-account": {Flags: map[string]complete.Predictor{
				"from": predict.Nothing,
				"to":   predict.Nothing,
			}},
			"select-account": {},
			"merge-account": {Flags: map[string]complete.Predictor{
				"from": predict.Nothing,
				"into": predict.Nothing,
			}},
			"stats": {Flags: map[string]complete.Predictor{
				"by":      predict.Set{"category", "month"},
				"top":     predict.Nothing,
				"rates":   predict.Nothing,
				"account": predict.Nothing,
				"all":     predict.Nothing,
			}},
			"update":          {},
			"select-currency": {},
			"topic":           {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"rates-file":  predict.Files("*.json"),
		},
	}
	c.Complete("mk")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
