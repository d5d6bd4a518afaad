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

package driver_test

import (
	"context"
	"testing"

	"github.com/db47h/intcode/driver"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type C []vm.Cell

const (
	chain1 = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	chain2 = "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0"
	ring1  = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	ring2  = "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10"
)

func parse(t *testing.T, code string) vm.Program {
	t.Helper()
	p, err := vm.ParseString(code)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return p
}

func TestChain(t *testing.T) {
	data := []struct {
		code   string
		phases C
		signal vm.Cell
	}{
		{chain1, C{4, 3, 2, 1, 0}, 43210},
		{chain2, C{0, 1, 2, 3, 4}, 54321},
	}
	for _, d := range data {
		signal, err := driver.Chain(parse(t, d.code), d.phases, 0)
		if err != nil {
			t.Errorf("%v: %+v", d.phases, err)
			continue
		}
		if signal != d.signal {
			t.Errorf("%v: expected %d, got %d", d.phases, d.signal, signal)
		}
	}

	if _, err := driver.Chain(parse(t, "3,0,3,0,99"), C{1, 2}, 0); errors.Cause(err) != driver.ErrNoSignal {
		t.Errorf("expected ErrNoSignal, got %v", err)
	}
}

func TestRing(t *testing.T) {
	data := []struct {
		code   string
		phases C
		signal vm.Cell
	}{
		{ring1, C{9, 8, 7, 6, 5}, 139629729},
		{ring2, C{9, 7, 8, 5, 6}, 18216},
	}
	for _, d := range data {
		// the result must not depend on anything but the program and phases
		for n := 0; n < 5; n++ {
			r, err := driver.NewRing(parse(t, d.code), d.phases)
			if err != nil {
				t.Fatal(err)
			}
			signal, err := r.Run(0)
			if err != nil {
				t.Fatalf("%v: %+v", d.phases, err)
			}
			if signal != d.signal {
				t.Fatalf("%v: run %d: expected %d, got %d", d.phases, n, d.signal, signal)
			}
			for k, s := range r.Stages() {
				if !s.Halted() {
					t.Fatalf("%v: stage %d not halted", d.phases, k)
				}
			}
		}
	}
}

func TestRing_lastBatch(t *testing.T) {
	// each stage outputs its input, then the input plus 1000
	r, err := driver.NewRing(parse(t, "3,20,3,21,4,21,1001,21,1000,22,4,22,99"), C{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	signal, err := r.Run(5)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if signal != 5 {
		t.Fatalf("expected 5, got %d", signal)
	}

	// outputs on the first round, then a stage with phase 0 halts silently
	r, err = driver.NewRing(parse(t, "3,30,3,31,4,31,3,32,1006,30,13,4,32,99"), C{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = r.Run(5); errors.Cause(err) != driver.ErrNoSignal {
		t.Fatalf("expected ErrNoSignal, got %v", err)
	}
}

func TestRing_errors(t *testing.T) {
	if _, err := driver.NewRing(parse(t, ring1), nil); err == nil {
		t.Error("expected an error for an empty ring")
	}

	// reads more than it gets and never writes anything
	r, err := driver.NewRing(parse(t, "3,0,3,0,3,0,99"), C{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = r.Run(0); errors.Cause(err) != driver.ErrStalled {
		t.Errorf("expected ErrStalled, got %v", err)
	}

	// a single faulty stage fails the whole ring
	r, err = driver.NewRing(parse(t, ring1), C{9, 8, 7, 6, 5})
	if err != nil {
		t.Fatal(err)
	}
	r.Stages()[2].Mem[0] = 42
	if _, err = r.Run(0); errors.Cause(err) != vm.ErrUnknownOpcode {
		t.Errorf("expected ErrUnknownOpcode, got %v", err)
	}
}

func TestPermutations(t *testing.T) {
	perms := driver.Permutations(C{0, 1, 2, 3, 4})
	if len(perms) != 120 {
		t.Fatalf("expected 120 permutations, got %d", len(perms))
	}
	if !slices.Equal(perms[0], C{0, 1, 2, 3, 4}) || !slices.Equal(perms[119], C{4, 3, 2, 1, 0}) {
		t.Fatalf("bad order: first %d, last %d", perms[0], perms[119])
	}
	seen := make(map[[5]vm.Cell]bool)
	for _, p := range perms {
		var k [5]vm.Cell
		copy(k[:], p)
		if seen[k] {
			t.Fatalf("duplicate permutation %d", p)
		}
		seen[k] = true
	}
	if perms := driver.Permutations(nil); len(perms) != 1 || len(perms[0]) != 0 {
		t.Fatalf("expected a single empty permutation, got %d", perms)
	}
}

func TestSearch(t *testing.T) {
	data := []struct {
		code     string
		set      C
		feedback bool
		res      driver.Result
	}{
		{chain1, C{0, 1, 2, 3, 4}, false, driver.Result{Signal: 43210, Phases: C{4, 3, 2, 1, 0}}},
		{ring1, C{5, 6, 7, 8, 9}, true, driver.Result{Signal: 139629729, Phases: C{9, 8, 7, 6, 5}}},
		{ring2, C{5, 6, 7, 8, 9}, true, driver.Result{Signal: 18216, Phases: C{9, 7, 8, 5, 6}}},
	}
	for _, d := range data {
		res, err := driver.Search(context.Background(), parse(t, d.code), d.set, d.feedback)
		if err != nil {
			t.Errorf("%+v", err)
			continue
		}
		if res.Signal != d.res.Signal || !slices.Equal(res.Phases, d.res.Phases) {
			t.Errorf("expected %v, got %v", d.res, res)
		}
	}

	// ties resolve to the first permutation
	res, err := driver.Search(context.Background(), parse(t, "3,0,3,0,4,0,99"), C{1, 2, 3}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Phases, C{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %d", res.Phases)
	}
}

func TestSearch_errors(t *testing.T) {
	// jumps out of memory
	_, err := driver.Search(context.Background(), parse(t, "3,0,1105,1,1000,99"), C{0, 1, 2}, false)
	if errors.Cause(err) != vm.ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if _, err = driver.Search(context.Background(), parse(t, chain1), nil, false); err == nil {
		t.Error("expected an error for an empty phase set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = driver.Search(ctx, parse(t, chain1), C{0, 1, 2, 3, 4}, false)
	if errors.Cause(err) != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
