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

import "strconv"

// Opcode is an Intcode operation selector.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJnz  Opcode = 5
	OpJz   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpArb  Opcode = 9
	OpHalt Opcode = 99
)

type opInfo struct {
	name   string
	params int
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJnz:  {"jnz", 2},
	OpJz:   {"jz", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpArb:  {"arb", 1},
	OpHalt: {"halt", 0},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Params returns the number of parameters taken by op, or -1 if op is not a
// valid opcode.
func (op Opcode) Params() int {
	if info, ok := opcodes[op]; ok {
		return info.params
	}
	return -1
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is a parameter addressing mode.
type Mode Cell

// Addressing modes.
const (
	Position  Mode = iota // parameter is an address
	Immediate             // parameter is a value
	Relative              // parameter is an address relative to the relative base
)

var modeNames = [...]string{"position", "immediate", "relative"}

// Valid returns true if m is a known addressing mode.
func (m Mode) Valid() bool {
	return m >= Position && m <= Relative
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "mode(" + strconv.FormatInt(int64(m), 10) + ")"
}

// Instruction is an instruction word.
type Instruction Cell

// Opcode returns the opcode encoded in the two lowest decimal digits of the
// instruction.
func (ins Instruction) Opcode() Opcode {
	return Opcode(ins % 100)
}

// Mode returns the addressing mode of the n-th parameter of the instruction,
// counting from 1. Missing digits yield Position.
func (ins Instruction) Mode(n int) Mode {
	d := Cell(ins) / 10
	for ; n > 0; n-- {
		d /= 10
	}
	return Mode(d % 10)
}
