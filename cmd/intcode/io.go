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
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// terminal exchanges values between a VM and the user.
type terminal interface {
	write(out []vm.Cell) error
	read() ([]vm.Cell, error)
}

// numberIO prints output values one per line and reads input as lines of
// comma separated values.
type numberIO struct {
	r *bufio.Reader
	w *bufio.Writer
}

func (n *numberIO) write(out []vm.Cell) error {
	ew := ici.NewErrWriter(n.w)
	b := make([]byte, 0, 24)
	for _, v := range out {
		b = strconv.AppendInt(b[:0], int64(v), 10)
		b = append(b, '\n')
		ew.Write(b)
	}
	return ew.Err
}

func (n *numberIO) read() ([]vm.Cell, error) {
	if err := n.w.Flush(); err != nil {
		return nil, errors.Wrap(err, "write failed")
	}
	for {
		l, err := n.r.ReadString('\n')
		if s := strings.TrimSpace(l); s != "" {
			return vm.ParseString(s)
		}
		if err != nil {
			return nil, err
		}
	}
}

// asciiIO exchanges text with the VM. With echo set, the terminal is in raw
// mode and we handle echo, backspace and CTRL-D ourselves.
type asciiIO struct {
	r    *bufio.Reader
	w    *bufio.Writer
	echo bool
}

func (a *asciiIO) write(out []vm.Cell) error {
	ew := ici.NewErrWriter(a.w)
	var b []byte
	for _, v := range out {
		if v >= 0 && v < 128 {
			b = append(b, byte(v))
			continue
		}
		if len(b) > 0 && b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '\n')
	}
	ew.Write(b)
	return ew.Err
}

func (a *asciiIO) read() ([]vm.Cell, error) {
	ew := ici.NewErrWriter(a.w)
	if err := a.w.Flush(); err != nil {
		return nil, errors.Wrap(err, "write failed")
	}
	var line []vm.Cell
	for {
		c, err := a.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				return append(line, '\n'), nil
			}
			return nil, err
		}
		if !a.echo {
			line = append(line, vm.Cell(c))
		} else {
			switch c {
			case 4: // CTRL-D
				if len(line) == 0 {
					return nil, io.EOF
				}
			case 8, 127:
				if len(line) > 0 {
					line = line[:len(line)-1]
					ew.Write([]byte{8, ' ', 8})
				}
			default:
				line = append(line, vm.Cell(c))
				ew.Write([]byte{c})
			}
			if err = a.w.Flush(); ew.Err == nil && err != nil {
				ew.Err = errors.Wrap(err, "write failed")
			}
			if ew.Err != nil {
				return nil, ew.Err
			}
		}
		if c == '\n' {
			return line, nil
		}
	}
}
