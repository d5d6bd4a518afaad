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

// Chain runs a single pass through a chain of instances of the same program,
// one per phase setting. Each instance is fed its phase setting followed by
// the output of the previous instance; the first one gets the initial signal.
// Chain returns the first value output by the last instance.
func Chain(prog []vm.Cell, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	in := []vm.Cell{signal}
	for k, phase := range phases {
		i, err := vm.New(prog, opts...)
		if err != nil {
			return 0, err
		}
		i.Feed(phase)
		i.Feed(in...)
		if _, err = i.Run(); err != nil {
			return 0, errors.Wrapf(err, "stage %d", k)
		}
		in = i.Drain()
	}
	if len(in) == 0 {
		return 0, errors.WithStack(ErrNoSignal)
	}
	return in[0], nil
}

// Ring is a feedback loop of VM instances: the output of each instance is
// moved to the input of the next one, and the output of the last instance
// goes back to the first.
type Ring struct {
	stages []*vm.Instance
}

// NewRing creates a new Ring with one instance of prog per phase setting. Each
// instance gets its phase setting as first input value.
func NewRing(prog []vm.Cell, phases []vm.Cell, opts ...vm.Option) (*Ring, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty ring")
	}
	r := &Ring{stages: make([]*vm.Instance, len(phases))}
	for k, phase := range phases {
		i, err := vm.New(prog, opts...)
		if err != nil {
			return nil, err
		}
		i.Feed(phase)
		r.stages[k] = i
	}
	return r, nil
}

// Stages returns the ring's instances, in order.
func (r *Ring) Stages() []*vm.Instance {
	return r.stages
}

// Run feeds signal to the first stage, then resumes each stage in turn,
// moving its output to the next stage, until the last stage halts. It returns
// the first value output by the last stage during its final run, or
// ErrNoSignal if it halted without output.
//
// Run fails with ErrStalled if a full round completes without any stage
// executing a single instruction.
func (r *Ring) Run(signal vm.Cell) (vm.Cell, error) {
	n := len(r.stages)
	r.stages[0].Feed(signal)
	for {
		progress := false
		for k, i := range r.stages {
			if i.Halted() {
				continue
			}
			count := i.InstructionCount()
			st, err := i.Run()
			if err != nil {
				return 0, errors.Wrapf(err, "stage %d", k)
			}
			if i.InstructionCount() != count {
				progress = true
			}
			out := i.Drain()
			if st == vm.Halted && k == n-1 {
				if len(out) == 0 {
					return 0, errors.WithStack(ErrNoSignal)
				}
				return out[0], nil
			}
			r.stages[(k+1)%n].Feed(out...)
		}
		if !progress {
			return 0, errors.WithStack(ErrStalled)
		}
	}
}
