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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by the VM. Use errors.Cause to get at them from a returned
// error.
var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrInvalidMode   = errors.New("invalid parameter mode")
	ErrOutOfBounds   = errors.New("address out of bounds")
	ErrHalted        = errors.New("program halted")
	ErrNoInput       = errors.New("input queue empty")
)

// Error is a fatal error that occurred while executing the instruction at PC.
type Error struct {
	Err  error
	PC   int
	Word Cell
}

func (e *Error) Error() string {
	return fmt.Sprintf("intcode: pc=%d (%d): %v", e.PC, e.Word, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Format implements fmt.Formatter. With the %+v verb, the stack trace of the
// underlying error is printed as well.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "intcode: pc=%d (%d): %+v", e.PC, e.Word, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}
