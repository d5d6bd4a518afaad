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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat sequence of integers that is loaded into a
// single, mutable memory image. The VM executes instructions until the program
// halts or until an input instruction finds the input queue empty, in which
// case Run returns NeedInput and leaves the instruction in place. The caller
// can then look at the produced output, feed more input with Feed and call Run
// again. This makes an Instance usable as a coroutine: several instances can
// be chained together by a driver that moves the output of one into the input
// of the next (see package github.com/db47h/intcode/driver).
//
// Instruction words encode the opcode in their two lowest decimal digits, the
// remaining digits select the addressing mode of each parameter, lowest digit
// first:
//
//	mode 0 (position):  the parameter is the address of the value
//	mode 1 (immediate): the parameter is the value itself
//	mode 2 (relative):  like position mode, offset by the relative base
//
// Malformed instructions and out of bounds memory accesses are fatal: Run
// returns a non-nil *Error and the instance state is left exactly as it was
// before the faulty instruction started.
//
// By default, memory is preallocated to ten times the program size and any
// access outside of it is an error. The GrowMemory option lets the VM extend
// memory on demand instead.
package vm
