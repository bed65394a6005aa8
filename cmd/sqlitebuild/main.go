package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/joeandaverde/sqlitewriter/cmd/sqlitebuild/command"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = append(args, "build")
	}

	commands := map[string]cli.CommandFactory{
		"build": func() (cli.Command, error) {
			return &command.BuildCommand{}, nil
		},
	}

	buildCLI := &cli.CLI{
		Args:     args,
		Commands: commands,
		HelpFunc: cli.BasicHelpFunc("sqlitebuild"),
	}

	exitCode, err := buildCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}
