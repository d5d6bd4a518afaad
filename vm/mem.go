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

// ensure makes sure that memory is at least size cells large.
func (i *Instance) ensure(size int) {
	if n := size - len(i.Mem); n > 0 {
		i.Mem = append(i.Mem, make([]Cell, n)...)
	}
}

func (i *Instance) inMem(addr Cell) bool {
	return addr >= 0 && addr < Cell(len(i.Mem))
}

// growable returns true if addr is past the end of memory but can be reached
// by growing it.
func (i *Instance) growable(addr Cell) bool {
	return addr >= Cell(len(i.Mem)) && addr < Cell(i.memLimit)
}

// fetch returns the value stored at addr. Unallocated cells within the growth
// limit read as 0.
func (i *Instance) fetch(addr Cell) (Cell, error) {
	if i.inMem(addr) {
		return i.Mem[addr], nil
	}
	if i.growable(addr) {
		return 0, nil
	}
	return 0, errors.Wrapf(ErrOutOfBounds, "read @%d, memory size %d", addr, len(i.Mem))
}

// writable checks that addr can be used as a store target.
func (i *Instance) writable(addr Cell) error {
	if i.inMem(addr) || i.growable(addr) {
		return nil
	}
	return errors.Wrapf(ErrOutOfBounds, "write @%d, memory size %d", addr, len(i.Mem))
}

// store writes v at addr, growing memory as needed. addr must have been
// checked with writable.
func (i *Instance) store(addr, v Cell) {
	if addr >= Cell(len(i.Mem)) {
		n := 2 * len(i.Mem)
		if n <= int(addr) {
			n = int(addr) + 1
		}
		if n > i.memLimit {
			n = i.memLimit
		}
		i.ensure(n)
	}
	i.Mem[addr] = v
}

// value resolves the n-th parameter of the current instruction to a value.
func (i *Instance) value(ins Instruction, n int) (Cell, error) {
	m := ins.Mode(n)
	if !m.Valid() {
		return 0, errors.Wrapf(ErrInvalidMode, "parameter %d: %v", n, m)
	}
	p, err := i.fetch(Cell(i.PC + n))
	if err != nil {
		return 0, err
	}
	switch m {
	case Immediate:
		return p, nil
	case Relative:
		p += i.rb
	}
	return i.fetch(p)
}

// addr resolves the n-th parameter of the current instruction to a store
// address.
func (i *Instance) addr(ins Instruction, n int) (Cell, error) {
	m := ins.Mode(n)
	switch m {
	case Position, Relative:
	case Immediate:
		return 0, errors.Wrapf(ErrInvalidMode, "parameter %d: immediate store target", n)
	default:
		return 0, errors.Wrapf(ErrInvalidMode, "parameter %d: %v", n, m)
	}
	p, err := i.fetch(Cell(i.PC + n))
	if err != nil {
		return 0, err
	}
	if m == Relative {
		p += i.rb
	}
	return p, i.writable(p)
}
