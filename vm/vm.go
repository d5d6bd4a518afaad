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

package vm

import "github.com/pkg/errors"

// Cell is the raw type stored in a memory location.
type Cell int64

// DefaultMemFactor is the default ratio between the initial memory size and
// the program size.
const DefaultMemFactor = 10

// State is the execution state reported by Step and Run.
type State int

// Execution states.
const (
	Running   State = iota // only returned by Step
	NeedInput              // an input instruction found the input queue empty
	Halted                 // the program executed a halt instruction
	Faulted                // a fatal error occurred, see the accompanying error
)

var stateNames = [...]string{"running", "need input", "halted", "faulted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown state"
	}
	return stateNames[s]
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      []Cell // Memory image
	rb       Cell
	in       []Cell
	out      []Cell
	insCount int64
	halted   bool
	progLen  int
	factor   int
	memLimit int
	strict   bool
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.Feed(v...); return nil }
}

// MemFactor sets the initial memory size to n times the program size. The
// default is DefaultMemFactor. Memory is never shrunk: setting a smaller factor
// on a running instance has no effect.
func MemFactor(n int) Option {
	return func(i *Instance) error {
		if n < 1 {
			return errors.Errorf("invalid memory factor %d", n)
		}
		i.factor = n
		if i.Mem != nil {
			i.ensure(i.progLen * n)
		}
		return nil
	}
}

// MemSize makes sure that memory is at least size cells large.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.ensure(size)
		return nil
	}
}

// GrowMemory enables automatic memory growth: writing past the end of memory
// extends it up to limit cells, and reading past the end yields 0. A limit of
// 0 restores the default behavior where any access outside of memory is an
// error.
func GrowMemory(limit int) Option {
	return func(i *Instance) error {
		if limit < 0 {
			return errors.Errorf("invalid memory limit %d", limit)
		}
		i.memLimit = limit
		return nil
	}
}

// StrictInput configures how the VM reacts to an input instruction when the
// input queue is empty. When strict is false (the default), Run returns
// NeedInput. When true, it fails with ErrNoInput.
func StrictInput(strict bool) Option {
	return func(i *Instance) error { i.strict = strict; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The program is copied into a fresh memory image, which is then zero-extended
// to MemFactor times the program size (10 by default). The instruction
// pointer and relative base start at 0 and both I/O queues are empty.
//
// Options will be set by calling SetOptions.
func New(prog []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		progLen: len(prog),
		factor:  DefaultMemFactor,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	// MemSize may have allocated memory already
	size := len(prog) * i.factor
	if len(i.Mem) > size {
		size = len(i.Mem)
	}
	i.Mem = make([]Cell, size)
	copy(i.Mem, prog)
	return i, nil
}

// RB returns the current relative base.
func (i *Instance) RB() Cell {
	return i.rb
}

// Halted returns true if the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
