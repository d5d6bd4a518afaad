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
	"context"
	"runtime"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/exp/slices"
)

// Permutations returns all permutations of set in lexicographic order of
// positions: the first permutation is set itself, the last one is set
// reversed.
func Permutations(set []vm.Cell) [][]vm.Cell {
	var (
		res  [][]vm.Cell
		perm func(prefix, rest []vm.Cell)
	)
	perm = func(prefix, rest []vm.Cell) {
		if len(rest) == 0 {
			res = append(res, slices.Clone(prefix))
			return
		}
		for k := range rest {
			perm(append(prefix, rest[k]), slices.Delete(slices.Clone(rest), k, k+1))
		}
	}
	perm(make([]vm.Cell, 0, len(set)), set)
	return res
}

// Result is the outcome of a phase setting search.
type Result struct {
	Signal vm.Cell
	Phases []vm.Cell
}

// best keeps track of the best result found so far. Most candidates are
// rejected after a read-only check.
type best struct {
	mu  *xsync.RBMutex
	res Result
	idx int
}

func (b *best) better(idx int, signal vm.Cell) bool {
	return b.idx < 0 || signal > b.res.Signal || signal == b.res.Signal && idx < b.idx
}

func (b *best) offer(idx int, r Result) {
	t := b.mu.RLock()
	ok := b.better(idx, r.Signal)
	b.mu.RUnlock(t)
	if !ok {
		return
	}
	b.mu.Lock()
	if b.better(idx, r.Signal) {
		b.res, b.idx = r, idx
	}
	b.mu.Unlock()
}

func evaluate(prog []vm.Cell, phases []vm.Cell, feedback bool, opts []vm.Option) (vm.Cell, error) {
	if !feedback {
		return Chain(prog, phases, 0, opts...)
	}
	r, err := NewRing(prog, phases, opts...)
	if err != nil {
		return 0, err
	}
	return r.Run(0)
}

// Search tries every permutation of the given phase settings and returns the
// one that yields the highest signal, using either a Chain (feedback false) or
// a Ring, with an initial signal of 0. Permutations are evaluated
// concurrently, each composition by a single goroutine. Should several
// permutations yield the same signal, the first one in the order returned by
// Permutations wins.
//
// The first error returned by any composition aborts the search.
func Search(ctx context.Context, prog []vm.Cell, set []vm.Cell, feedback bool, opts ...vm.Option) (Result, error) {
	if len(set) == 0 {
		return Result{}, errors.New("empty phase set")
	}
	perms := Permutations(set)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		workers = runtime.GOMAXPROCS(0)
		jobs    = make(chan int)
		errc    = make(chan error, workers)
		b       = &best{mu: &xsync.RBMutex{}, idx: -1}
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				signal, err := evaluate(prog, perms[idx], feedback, opts)
				if err != nil {
					errc <- errors.Wrapf(err, "phases %d", perms[idx])
					cancel()
					return
				}
				b.offer(idx, Result{signal, perms[idx]})
			}
		}()
	}

feed:
	for idx := range perms {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errc:
		return Result{}, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return b.res, nil
}
