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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/slices"
)

func assertOutput(t *testing.T, name string, expected, got []vm.Cell) {
	t.Helper()
	if !slices.Equal(expected, got) {
		t.Errorf("%s: expected %d, got %d", name, expected, got)
	}
}

func Test_io_Order(t *testing.T) {
	// read three values, write them back in reverse order
	i := setup(t, "3,100,3,101,3,102,4,102,4,101,4,100,99", vm.Input(1, 2))
	i.Feed(3)
	if st, err := i.Run(); err != nil || st != vm.Halted {
		t.Fatalf("unexpected result: %v, %+v", st, err)
	}
	assertOutput(t, "io_Order", C{3, 2, 1}, i.Output())
}

func Test_io_Queue(t *testing.T) {
	i := setup(t, "104,1,104,2,104,3,99")
	if _, err := i.Run(); err != nil {
		t.Fatal(err)
	}
	assertOutput(t, "io_Queue peek", C{1, 2, 3}, i.Output())
	assertOutput(t, "io_Queue peek twice", C{1, 2, 3}, i.Output())
	v, ok := i.Next()
	if !ok || v != 1 {
		t.Fatalf("io_Queue next: expected 1, got %d (%v)", v, ok)
	}
	assertOutput(t, "io_Queue drain", C{2, 3}, i.Drain())
	if _, ok = i.Next(); ok {
		t.Fatal("io_Queue: output queue not empty after Drain")
	}
	if out := i.Drain(); len(out) != 0 {
		t.Fatalf("io_Queue: expected empty output, got %d", out)
	}
}

func Test_io_Resume(t *testing.T) {
	// echo forever
	i := setup(t, "3,7,4,7,1105,1,0,0")
	for _, in := range []C{{1}, {2, 3}, {}, {-4, 5, 6}} {
		i.Feed(in...)
		if i.Pending() != len(in) {
			t.Fatalf("io_Resume: %d values pending, expected %d", i.Pending(), len(in))
		}
		st, err := i.Run()
		if err != nil || st != vm.NeedInput {
			t.Fatalf("unexpected result: %v, %+v", st, err)
		}
		if i.Pending() != 0 {
			t.Fatalf("io_Resume: %d values left in input queue", i.Pending())
		}
		if len(in) == 0 {
			in = nil
		}
		assertOutput(t, "io_Resume", in, i.Drain())
	}
}
