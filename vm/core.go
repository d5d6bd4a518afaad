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

// word returns the instruction word at PC, or 0 if PC is out of bounds.
func (i *Instance) word() Cell {
	if i.inMem(Cell(i.PC)) {
		return i.Mem[i.PC]
	}
	return 0
}

// Step executes a single instruction.
//
// It returns Running if the instruction completed, NeedInput if it is an input
// instruction and the input queue is empty, or Halted. In case of error, the
// returned state is Faulted and the error is an *Error. Neither memory, PC,
// the relative base nor the I/O queues are modified by a faulty instruction or
// by a NeedInput suspension.
//
// Calling Step after the program has halted returns ErrHalted.
func (i *Instance) Step() (State, error) {
	if i.halted {
		return Halted, errors.WithStack(ErrHalted)
	}
	st, err := i.step()
	if err != nil {
		return Faulted, &Error{Err: err, PC: i.PC, Word: i.word()}
	}
	return st, nil
}

func (i *Instance) step() (State, error) {
	w, err := i.fetch(Cell(i.PC))
	if err != nil {
		return Faulted, err
	}
	ins := Instruction(w)
	switch op := ins.Opcode(); op {
	case OpAdd, OpMul, OpLt, OpEq:
		a, err := i.value(ins, 1)
		if err != nil {
			return Faulted, err
		}
		b, err := i.value(ins, 2)
		if err != nil {
			return Faulted, err
		}
		dst, err := i.addr(ins, 3)
		if err != nil {
			return Faulted, err
		}
		var v Cell
		switch op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			if a < b {
				v = 1
			}
		case OpEq:
			if a == b {
				v = 1
			}
		}
		i.store(dst, v)
		i.PC += 4
	case OpIn:
		if len(i.in) == 0 {
			if i.strict {
				return Faulted, errors.WithStack(ErrNoInput)
			}
			return NeedInput, nil
		}
		dst, err := i.addr(ins, 1)
		if err != nil {
			return Faulted, err
		}
		i.store(dst, i.in[0])
		i.in = i.in[1:]
		i.PC += 2
	case OpOut:
		a, err := i.value(ins, 1)
		if err != nil {
			return Faulted, err
		}
		i.out = append(i.out, a)
		i.PC += 2
	case OpJnz, OpJz:
		a, err := i.value(ins, 1)
		if err != nil {
			return Faulted, err
		}
		b, err := i.value(ins, 2)
		if err != nil {
			return Faulted, err
		}
		if (a != 0) != (op == OpJnz) {
			i.PC += 3
			break
		}
		if !i.inMem(b) {
			return Faulted, errors.Wrapf(ErrOutOfBounds, "jump to %d, memory size %d", b, len(i.Mem))
		}
		i.PC = int(b)
	case OpArb:
		a, err := i.value(ins, 1)
		if err != nil {
			return Faulted, err
		}
		i.rb += a
		i.PC += 2
	case OpHalt:
		i.halted = true
		i.insCount++
		return Halted, nil
	default:
		return Faulted, errors.Wrapf(ErrUnknownOpcode, "%d", op)
	}
	i.insCount++
	return Running, nil
}

// Run starts or resumes execution of the VM.
//
// It executes instructions until the program halts, in which case it returns
// Halted, or until an input instruction finds the input queue empty, in which
// case it returns NeedInput. In the latter case, the input instruction is not
// consumed: feed some input with Feed and call Run again to resume execution.
//
// If an error occurs, the returned state is Faulted and the PC will point to
// the instruction that triggered the error.
func (i *Instance) Run() (State, error) {
	for {
		st, err := i.Step()
		if err != nil || st != Running {
			return st, err
		}
	}
}
