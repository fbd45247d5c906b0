// This file is part of wmsboard.
//
// wmsboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wmsboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wmsboard.  If not, see <https://www.gnu.org/licenses/>.

package runner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/wmsboard/curated"
)

// Kind of command.
type Kind int

// List of valid command kinds.
const (
	Idle Kind = iota
	Reset
	Run
	RunTo
	Poke
	IRQ
	Trace
	SFX
	Power
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "IDLE"
	case Reset:
		return "RESET"
	case Run:
		return "RUN"
	case RunTo:
		return "RUNTO"
	case Poke:
		return "POKE"
	case IRQ:
		return "IRQ"
	case Trace:
		return "TRACE"
	case SFX:
		return "SFX"
	case Power:
		return "POWER"
	}
	return "unknown command"
}

// Command is a single instruction to the runner. Only the fields relevant to
// the Kind are used.
type Command struct {
	Kind Kind

	// number of steps for Run
	Count int

	// target address for RunTo and Poke
	Address uint16

	// value for Poke and sound code for SFX
	Value uint8

	// Trace on or off
	On bool
}

func (c Command) String() string {
	switch c.Kind {
	case Run:
		return fmt.Sprintf("%s %d", c.Kind, c.Count)
	case RunTo:
		return fmt.Sprintf("%s %04x", c.Kind, c.Address)
	case Poke:
		return fmt.Sprintf("%s %04x %02x", c.Kind, c.Address, c.Value)
	case SFX:
		return fmt.Sprintf("%s %02x", c.Kind, c.Value)
	case Trace:
		if c.On {
			return fmt.Sprintf("%s ON", c.Kind)
		}
		return fmt.Sprintf("%s OFF", c.Kind)
	}
	return c.Kind.String()
}

// hex conversion accepting the $ and 0x prefixes
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, bitSize)
}

// ParseCommand converts a single line of text to a Command. Commands are not
// case sensitive.
func ParseCommand(s string) (Command, error) {
	toks := strings.Fields(strings.ToUpper(s))
	if len(toks) == 0 {
		return Command{Kind: Idle}, nil
	}

	args := func(n int) error {
		if len(toks)-1 < n {
			return curated.Errorf("runner: not enough arguments for %s", toks[0])
		}
		if len(toks)-1 > n {
			return curated.Errorf("runner: too many arguments for %s", toks[0])
		}
		return nil
	}

	switch toks[0] {
	case "IDLE":
		if err := args(0); err != nil {
			return Command{}, err
		}
		return Command{Kind: Idle}, nil

	case "RESET":
		if err := args(0); err != nil {
			return Command{}, err
		}
		return Command{Kind: Reset}, nil

	case "POWER":
		if err := args(0); err != nil {
			return Command{}, err
		}
		return Command{Kind: Power}, nil

	case "RUN":
		if err := args(1); err != nil {
			return Command{}, err
		}
		n, err := strconv.Atoi(toks[1])
		if err != nil || n < 0 {
			return Command{}, curated.Errorf("runner: unrecognised step count for RUN: %s", toks[1])
		}
		return Command{Kind: Run, Count: n}, nil

	case "RUNTO":
		if err := args(1); err != nil {
			return Command{}, err
		}
		a, err := parseHex(toks[1], 16)
		if err != nil {
			return Command{}, curated.Errorf("runner: unrecognised address for RUNTO: %s", toks[1])
		}
		return Command{Kind: RunTo, Address: uint16(a)}, nil

	case "POKE":
		if err := args(2); err != nil {
			return Command{}, err
		}
		a, err := parseHex(toks[1], 16)
		if err != nil {
			return Command{}, curated.Errorf("runner: unrecognised address for POKE: %s", toks[1])
		}
		v, err := parseHex(toks[2], 8)
		if err != nil {
			return Command{}, curated.Errorf("runner: unrecognised value for POKE: %s", toks[2])
		}
		return Command{Kind: Poke, Address: uint16(a), Value: uint8(v)}, nil

	case "IRQ":
		if err := args(0); err != nil {
			return Command{}, err
		}
		return Command{Kind: IRQ}, nil

	case "TRACE":
		if err := args(1); err != nil {
			return Command{}, err
		}
		switch toks[1] {
		case "ON":
			return Command{Kind: Trace, On: true}, nil
		case "OFF":
			return Command{Kind: Trace, On: false}, nil
		}
		return Command{}, curated.Errorf("runner: TRACE must be ON or OFF: %s", toks[1])

	case "SFX":
		if err := args(1); err != nil {
			return Command{}, err
		}
		v, err := parseHex(toks[1], 8)
		if err != nil {
			return Command{}, curated.Errorf("runner: unrecognised sound code for SFX: %s", toks[1])
		}
		return Command{Kind: SFX, Value: uint8(v)}, nil
	}

	return Command{}, curated.Errorf("runner: unrecognised command: %s", toks[0])
}

// ParseScript reads commands from r, one per line. Blank lines and lines
// beginning with "--" are ignored. The line number is included in any error.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "--") {
			continue // for loop
		}

		c, err := ParseCommand(s)
		if err != nil {
			return nil, curated.Errorf("runner: line %d: %v", ln, err)
		}
		cmds = append(cmds, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("runner: %v", err)
	}

	return cmds, nil
}
