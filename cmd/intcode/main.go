// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/db47h/intcode/driver"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string { return vm.Program(*l).String() }
func (l *cellList) Set(s string) error {
	p, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*l = append(*l, p...)
	return nil
}
func (l *cellList) Get() interface{} { return []vm.Cell(*l) }

type poke struct {
	addr int
	v    vm.Cell
}

type pokeList []poke

func (l *pokeList) String() string {
	var b strings.Builder
	for k, p := range *l {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d=%d", p.addr, p.v)
	}
	return b.String()
}

func (l *pokeList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("%q: expected addr=value", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	if addr < 0 {
		return errors.Errorf("invalid address %d", addr)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, poke{addr, vm.Cell(n)})
	return nil
}

func (l *pokeList) Get() interface{} { return *l }

// apply patches prog in place.
func (l pokeList) apply(prog vm.Program) error {
	for _, p := range l {
		if p.addr >= len(prog) {
			return errors.Errorf("-set %d=%d: address outside of program (size %d)", p.addr, p.v, len(prog))
		}
		prog[p.addr] = p.v
	}
	return nil
}

var (
	noShrink bool
	noRawIO  bool
	debug    bool
	dump     bool
	ascii    bool
)

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func run(i *vm.Instance, t terminal) error {
	err := driver.Interact(i, func(out []vm.Cell) ([]vm.Cell, error) {
		if err := t.write(out); err != nil {
			return nil, err
		}
		if i.Halted() {
			return nil, nil
		}
		return t.read()
	})
	if errors.Cause(err) == io.EOF {
		return nil
	}
	return err
}

func amplify(w io.Writer, prog vm.Program, phases []vm.Cell, feedback, search bool, opts []vm.Option) error {
	var (
		sig vm.Cell
		err error
	)
	switch {
	case search:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var res driver.Result
		if res, err = driver.Search(ctx, prog, phases, feedback, opts...); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d %v\n", res.Signal, vm.Program(res.Phases))
		return errors.Wrap(err, "write failed")
	case feedback:
		var r *driver.Ring
		if r, err = driver.NewRing(prog, phases, opts...); err != nil {
			return err
		}
		sig, err = r.Run(0)
	default:
		sig, err = driver.Chain(prog, phases, 0, opts...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, sig)
	return errors.Wrap(err, "write failed")
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, Count: %v\n", i.PC, i.Mem[i.PC], i.RB(), i.InstructionCount())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, Count: %v\n", i.PC, i.RB(), i.InstructionCount())
		}
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		atExit(i, err)
	}()

	var input, amp, loop cellList
	var pokes pokeList

	var fileName = flag.String("program", "input.txt", "load program from file `filename`")
	flag.Var(&input, "input", "comma separated `values` to feed the program (can be specified multiple times)")
	flag.Var(&pokes, "set", "set memory cell `addr=value` before running (can be specified multiple times)")
	var size = flag.Int("size", 0, "runtime memory size in cells (default 10 times the program size)")
	var grow = flag.Int("grow", 0, "let memory grow up to `limit` cells (default 0: disabled)")
	var strict = flag.Bool("strict", false, "fail instead of waiting for input when the input queue is empty")
	flag.BoolVar(&ascii, "ascii", false, "ASCII mode: exchange text with the program instead of numbers")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.Var(&amp, "amp", "run a chain of amplifiers with the given comma separated `phases` settings")
	flag.Var(&loop, "loop", "run a feedback loop of amplifiers with the given comma separated `phases` settings")
	var search = flag.Bool("search", false, "search the permutation of the -amp or -loop phases that yields the highest signal")
	flag.BoolVar(&dump, "dump", false, "dump registers and memory upon exit")
	flag.BoolVar(&noShrink, "noshrink", false, "do not trim trailing zero cells from memory dumps")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	if flag.NArg() > 0 {
		*fileName = flag.Arg(0)
	}

	var prog vm.Program
	if prog, err = vm.Load(*fileName); err != nil {
		return
	}
	if err = pokes.apply(prog); err != nil {
		return
	}

	var opts []vm.Option
	if *size > 0 {
		opts = append(opts, vm.MemSize(*size))
	}
	if *grow > 0 {
		opts = append(opts, vm.GrowMemory(*grow))
	}
	if *strict {
		opts = append(opts, vm.StrictInput(true))
	}

	switch {
	case len(amp) > 0 && len(loop) > 0:
		err = errors.New("-amp and -loop are mutually exclusive")
		return
	case len(amp) > 0 || len(loop) > 0:
		if len(input) > 0 {
			err = errors.New("-input cannot be used with -amp or -loop")
			return
		}
		err = amplify(stdout, prog, append(amp, loop...), len(loop) > 0, *search, opts)
		return
	case *search:
		err = errors.New("-search requires -amp or -loop")
		return
	}

	if i, err = vm.New(prog, append(opts, vm.Input(input...))...); err != nil {
		return
	}

	var t terminal
	if ascii {
		// try to switch the terminal to raw mode.
		rawtty, ioTearDownFn := setupIO()
		if ioTearDownFn != nil {
			defer ioTearDownFn()
		}
		t = &asciiIO{r: bufio.NewReader(os.Stdin), w: stdout, echo: rawtty}
	} else {
		t = &numberIO{r: bufio.NewReader(os.Stdin), w: stdout}
	}

	if err = run(i, t); err == nil && dump {
		err = dumpVM(i, stdout)
	}
}
