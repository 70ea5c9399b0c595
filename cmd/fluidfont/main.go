// SPDX-License-Identifier: EPL-2.0

// Command fluidfont inspects SoundFont files and renders notes from them.
//
// Usage:
//
//	fluidfont list [flags] font.sf2
//	fluidfont samples [flags] dir
//	fluidfont render [flags] font.sf2
//	fluidfont play [flags] font.sf2
//
// Synthesizer settings come from the FLUIDFONT_* environment variables and
// can be overridden with flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

var errUsage = errors.New("usage: fluidfont list|samples|render|play [flags] path")

func main() {
	log.SetFlags(0)
	log.SetPrefix("fluidfont: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type command func(args []string, env *environment) error

var commands = map[string]command{
	"list":    listCmd,
	"samples": samplesCmd,
	"render":  renderCmd,
	"play":    playCmd,
}

// environment carries what commands print to and read settings from.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
}

func run(args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}

	return cmd(args[1:], &environment{stdout: stdout, stderr: stderr, lookup: lookup})
}

// onePath parses fs and returns its single positional argument.
func onePath(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one path, got %d\n%w", fs.Name(), fs.NArg(), errUsage)
	}

	return fs.Arg(0), nil
}
