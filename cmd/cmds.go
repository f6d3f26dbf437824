// Package cmd holds the command line plumbing for the seqmine binary:
// getopt backed subcommands, usage errors with exit codes, input opening,
// and cpu profiling.
package cmd

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

// Action runs a command's work after its flags have been parsed.
type Action func(c *Command, args []string, optargs []getopt.OptArg) *Error

// Command is one subcommand of the binary: a name, its getopt option specs,
// usage text, and the action to run. -h/--help are always accepted.
type Command struct {
	action    Action
	name      string
	shortMsg  string
	message   string
	shortOpts string
	longOpts  []string
}

func Cmd(name, shortMsg, msg, shortOpts string, longOpts []string, act Action) *Command {
	return &Command{
		action:    act,
		name:      strings.TrimSpace(name),
		shortMsg:  strings.TrimSpace(shortMsg),
		message:   strings.TrimSpace(msg),
		shortOpts: shortOpts,
		longOpts:  longOpts,
	}
}

// Run parses argv and invokes the action.
func (c *Command) Run(argv []string) *Error {
	short := c.shortOpts
	if !strings.Contains(short, "h") {
		short += "h"
	}
	long := c.longOpts
	if !hasString(long, "help") {
		long = append(long, "help")
	}
	args, optargs, err := getopt.GetOpt(argv, short, long)
	if err != nil {
		return Usage(c, 1, "could not process args: %v", err)
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			return Usage(c, 0)
		}
	}
	return c.action(c, args, optargs)
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) ShortUsage() string {
	return fmt.Sprintf("%v %v", c.name, c.shortMsg)
}

func (c *Command) Usage() string {
	return c.message
}

func hasString(list []string, s string) bool {
	for _, item := range list {
		if s == item {
			return true
		}
	}
	return false
}
