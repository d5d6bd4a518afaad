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

// Package driver provides helpers to compose and drive Intcode VM instances.
//
// The VM itself knows nothing about the protocol a program speaks on its I/O
// queues. The functions in this package implement the most common ones: a
// chain of instances where the output of one becomes the input of the next, a
// feedback ring of such instances driven round-robin, a search over phase
// settings for either, and a generic sense/act loop for interactive programs.
//
// All compositions are driven sequentially and deterministically: instances
// are resumed in a fixed order and output is moved from one instance to the
// next by the driver. Any fatal VM error fails the whole composition.
package driver

import "github.com/pkg/errors"

// Errors returned by drivers.
var (
	ErrStalled  = errors.New("no progress: all instances are waiting for input")
	ErrNoSignal = errors.New("no output signal")
	ErrStop     = errors.New("stop")
)
