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

package driver

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Interact drives inst as a sense/act loop. Each time the VM suspends, the
// output produced since the last suspension is passed to fn, and the values
// returned by fn are fed to the VM before resuming it. The loop ends when the
// program halts (fn is still called with the final output) or when fn returns
// ErrStop, in which case Interact returns nil.
//
// If the VM needs input and fn returns none, Interact fails with ErrStalled.
func Interact(inst *vm.Instance, fn func(out []vm.Cell) (in []vm.Cell, err error)) error {
	for {
		st, err := inst.Run()
		if err != nil {
			return err
		}
		in, err := fn(inst.Drain())
		if err != nil {
			if errors.Cause(err) == ErrStop {
				return nil
			}
			return err
		}
		if st == vm.Halted {
			return nil
		}
		if len(in) == 0 {
			return errors.WithStack(ErrStalled)
		}
		inst.Feed(in...)
	}
}

// Records splits out into consecutive records of width values each, as used
// by programs that output fixed size tuples like (x, y, tile id). The records
// share their backing array with out.
func Records(out []vm.Cell, width int) ([][]vm.Cell, error) {
	if width <= 0 {
		return nil, errors.Errorf("invalid record width %d", width)
	}
	if len(out)%width != 0 {
		return nil, errors.Errorf("%d values do not make up records of %d values", len(out), width)
	}
	recs := make([][]vm.Cell, 0, len(out)/width)
	for len(out) > 0 {
		recs = append(recs, out[:width:width])
		out = out[width:]
	}
	return recs, nil
}
