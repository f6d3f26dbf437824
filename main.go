package main

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/seqmine/cmd"
	"github.com/timtadh/seqmine/motif"
)

var usage = fmt.Sprintf(`usage: %v <command> [options]

seqmine extracts approximate repeated motifs from a long sequence.

Commands
    extract                           Mine the motifs of a sequence

Use %v <command> -h for the flags of a command.`, os.Args[0], os.Args[0])

func main() {
	cmd.Main(os.Args[1:], usage, motif.NewCommand())
}
