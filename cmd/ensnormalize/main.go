// Command ensnormalize normalizes or beautifies ENS names from the
// command line, one per argument.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ensdomains/go-ens-normalize"
)

func main() {
	os.Exit(doMain(os.Stdout, os.Stderr, os.Args[1:]))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer, args []string) int {
	flags := flag.NewFlagSet("ensnormalize", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var help bool
	flags.BoolVar(&help, "h", false, "Prints usage.")

	var beautify bool
	flags.BoolVar(&beautify, "beautify", false, "Print the beautified form instead of the normalized form.")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if help || flags.NArg() == 0 {
		printUsage(stdErr)
		return 0
	}

	exit := 0
	for _, name := range flags.Args() {
		var out string
		var err error
		if beautify {
			out, err = ensnormalize.Beautify(name)
		} else {
			out, err = ensnormalize.Normalize(name)
		}
		if err != nil {
			fmt.Fprintf(stdErr, "%s: %v\n", name, err)
			exit = 1
			continue
		}
		fmt.Fprintln(stdOut, out)
	}
	return exit
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: ensnormalize [-beautify] name [name ...]")
	fmt.Fprintln(w, "Normalizes (or, with -beautify, beautifies) one or more ENS names.")
}
