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

// Feed appends the given values to the input queue. Values are consumed by
// input instructions in the order they are fed.
func (i *Instance) Feed(v ...Cell) {
	i.in = append(i.in, v...)
}

// Pending returns the number of unread values in the input queue.
func (i *Instance) Pending() int {
	return len(i.in)
}

// Output returns the output queue without consuming it. Note that value changes
// will be reflected in the instance's queue, but re-slicing will not affect it.
func (i *Instance) Output() []Cell {
	return i.out
}

// Drain removes all values from the output queue and returns them in the order
// they were produced.
func (i *Instance) Drain() []Cell {
	out := i.out
	i.out = nil
	return out
}

// Next pops the oldest value from the output queue. The boolean result is
// false if the queue is empty.
func (i *Instance) Next() (Cell, bool) {
	if len(i.out) == 0 {
		return 0, false
	}
	v := i.out[0]
	i.out = i.out[1:]
	return v, true
}
