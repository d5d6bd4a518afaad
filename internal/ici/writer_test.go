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

package ici_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

var errFull = errors.New("disk full")

type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	lw := &limitWriter{n: 4}
	ew := ici.NewErrWriter(lw)
	if ici.NewErrWriter(ew) != ew {
		t.Fatal("NewErrWriter did not reuse an existing ErrWriter")
	}
	fmt.Fprintf(ew, "%d", 123)
	if ew.Err != nil {
		t.Fatalf("unexpected error %v", ew.Err)
	}
	fmt.Fprintf(ew, "%s", "45")
	if errors.Cause(ew.Err) != errFull {
		t.Fatalf("expected %v, got %v", errFull, ew.Err)
	}
	lw.n = 100
	if n, err := ew.Write([]byte("x")); n != 0 || errors.Cause(err) != errFull {
		t.Fatalf("expected sticky error, got %d, %v", n, err)
	}
}

func TestErrWriter_ok(t *testing.T) {
	var b strings.Builder
	ew := ici.NewErrWriter(&b)
	fmt.Fprintf(ew, "pc=%d", 8)
	ew.Write([]byte{'\n'})
	if ew.Err != nil || b.String() != "pc=8\n" {
		t.Fatalf("got %q, %v", b.String(), ew.Err)
	}
}
