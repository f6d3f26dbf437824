package cmd

import (
	"fmt"
	"os"
)

// Main dispatches the first argument to one of cmds and exits the process.
// diverges
func Main(argv []string, usage string, cmds ...*Command) {
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if argv[0] == "-h" || argv[0] == "--help" {
		fmt.Println(usage)
		os.Exit(0)
	}
	for _, c := range cmds {
		if c.Name() != argv[0] {
			continue
		}
		if err := c.Run(argv[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(err.ExitCode)
		}
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "unknown command %v\n\n%v\n", argv[0], usage)
	os.Exit(1)
}
