package motif

import (
	"io"
	"os"
	"strconv"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/seqmine/cmd"
	"github.com/timtadh/seqmine/distance"
	"github.com/timtadh/seqmine/seq"
)

func NewCommand() *cmd.Command {
	return cmd.Cmd(
		"extract",
		`[options]`,
		`
Extract the approximate repeated motifs of a sequence. The sequence is read
as whitespace separated tokens which are concatenated; gzipped input files
are decompressed transparently.

Option Flags
    -h,--help                         Show this message
    -i,--input=<path>                 Read the sequence from <path>
    -s,--stdin                        Read the sequence from standard input
    -f,--min-frequency=<int>          Minimum occurrence count of a motif (default 2)
    -d,--max-distance=<float>         Maximum distance of an approximate occurrence (default 0)
    -l,--min-length=<int>             Minimum motif length (default 1)
    -L,--max-length=<int>             Maximum motif length (default 20)
    -m,--mode=<mode>                  One of silent, statistics, motif (default motif)
    -a,--sax-alphabet=<str>           Use SAX MINDIST with this ordered alphabet
                                      instead of the Hamming distance
    -v,--verbose                      Log progress to stderr
    -p,--cpu-profile=<path>           Write a cpu profile to <path>
`,
		"i:sf:d:l:L:m:a:vp:",
		[]string{
			"input=",
			"stdin",
			"min-frequency=",
			"max-distance=",
			"min-length=",
			"max-length=",
			"mode=",
			"sax-alphabet=",
			"verbose",
			"cpu-profile=",
		},
		func(c *cmd.Command, args []string, optargs []getopt.OptArg) *cmd.Error {
			opts := Options{
				MinLength:    1,
				MaxLength:    20,
				MinFrequency: 2,
				MaxDistance:  0.0,
				Mode:         Motifs,
				Measure:      distance.Hamming,
			}
			input := ""
			stdin := false
			cpuProfile := ""
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-i", "--input":
					input = oa.Arg()
				case "-s", "--stdin":
					stdin = true
				case "-f", "--min-frequency":
					f, err := strconv.Atoi(oa.Arg())
					if err != nil || f < 1 {
						return cmd.Usage(c, 1, "%v expects an int >= 1 (got %v)", oa.Opt(), oa.Arg())
					}
					opts.MinFrequency = f
				case "-d", "--max-distance":
					d, err := strconv.ParseFloat(oa.Arg(), 64)
					if err != nil || d < 0 {
						return cmd.Usage(c, 1, "%v expects a float >= 0 (got %v)", oa.Opt(), oa.Arg())
					}
					opts.MaxDistance = d
				case "-l", "--min-length":
					l, err := strconv.Atoi(oa.Arg())
					if err != nil || l < 1 {
						return cmd.Usage(c, 1, "%v expects an int >= 1 (got %v)", oa.Opt(), oa.Arg())
					}
					opts.MinLength = l
				case "-L", "--max-length":
					l, err := strconv.Atoi(oa.Arg())
					if err != nil || l < 1 {
						return cmd.Usage(c, 1, "%v expects an int >= 1 (got %v)", oa.Opt(), oa.Arg())
					}
					opts.MaxLength = l
				case "-m", "--mode":
					mode, err := ParseMode(oa.Arg())
					if err != nil {
						return cmd.Usage(c, 1, "%v", err)
					}
					opts.Mode = mode
				case "-a", "--sax-alphabet":
					measure, err := distance.SAXMinDist(oa.Arg())
					if err != nil {
						return cmd.Usage(c, 1, "%v", err)
					}
					opts.Measure = measure
				case "-v", "--verbose":
					opts.Verbose = true
				case "-p", "--cpu-profile":
					cpuProfile = oa.Arg()
				}
			}
			if len(args) != 0 {
				return cmd.Usage(c, 1, "unexpected arguments %v", args)
			}
			if input != "" && stdin {
				return cmd.Usage(c, 1, "you cannot specify both --input and --stdin")
			}
			if input == "" && !stdin {
				return cmd.Usage(c, 1, "you must specify either --input or --stdin")
			}
			in, closeall, err := openInput(input, stdin)
			if err != nil {
				return cmd.Errorf(1, "could not open the input: %v", err)
			}
			defer closeall()
			sequence, err := seq.Read(in)
			if err != nil {
				return cmd.Errorf(1, "could not read the input: %v", err)
			}
			if cpuProfile != "" {
				cleanup, cerr := cmd.CPUProfile(cpuProfile)
				if cerr != nil {
					return cerr
				}
				defer cleanup()
			}
			if err := Extract(sequence, opts, os.Stdout); err != nil {
				return cmd.Errorf(1, "could not write the output: %v", err)
			}
			return nil
		})
}

func openInput(path string, stdin bool) (reader io.Reader, closeall func(), err error) {
	if stdin {
		return cmd.Stdin()
	}
	return cmd.Input(path)
}
