// Package control implements the interactive console operators use to
// set driveways (spec.md §4.5), grounded in
// original_source/src/control_station.rs's read-loop shape. Unlike the
// source, input and output are injected as an io.Reader/io.Writer
// rather than bound to the process's stdin/stdout, so the
// Reading -> Dispatching -> Reading cycle can be driven deterministically
// in tests.
package control

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/driveway"
)

const helpText = `==== HELP ====

set [from] [to]
    Sets the driveway between signals [from] and [to]

quit
    Exits this control station

help
    Shows this help
`

// Station is the interactive driveway-setting console.
type Station struct {
	manager *driveway.Manager
	in      *bufio.Scanner
	out     io.Writer
	log     *logiface.Logger[logiface.Event]
}

// NewStation constructs a Station reading commands from in and writing
// prompts/responses to out.
func NewStation(manager *driveway.Manager, in io.Reader, out io.Writer, log *logiface.Logger[logiface.Event]) *Station {
	return &Station{manager: manager, in: bufio.NewScanner(in), out: out, log: log}
}

// Run drives the read-dispatch loop until "quit" is entered or the
// input reader reaches EOF. It returns nil in both cases; a scan error
// other than EOF is returned to the caller.
func (s *Station) Run() error {
	for {
		fmt.Fprintf(s.out, "Existing Driveways: %v\n", s.manager.IDs())
		fmt.Fprint(s.out, "> ")

		if !s.in.Scan() {
			return s.in.Err()
		}

		if s.dispatch(s.in.Text()) {
			return nil
		}
	}
}

// dispatch handles a single input line, returning true if the station
// should stop.
func (s *Station) dispatch(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "set":
		if len(rest) < 2 {
			fmt.Fprintln(s.out, "Error: Please provide two valid signals.")
			return false
		}
		from, to := rest[0], rest[1]
		fmt.Fprintf(s.out, "Setting driveway from %s to %s\n", from, to)
		if err := s.manager.SetDriveway(from, to); err != nil {
			fmt.Fprintf(s.out, "An error occurred: %v\n", err)
			if s.log != nil {
				s.log.Warning().Str("from", from).Str("to", to).Err(err).Log("set driveway command failed")
			}
		}
		return false
	case "help":
		fmt.Fprintln(s.out, helpText)
		return false
	case "quit":
		fmt.Fprintln(s.out, "Exiting control station")
		return true
	default:
		fmt.Fprintf(s.out, "Sorry, command '%s' is unknown\n", cmd)
		return false
	}
}
