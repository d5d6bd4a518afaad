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

// The intcode command line tool runs Intcode programs. It is a showcase for
// the packages github.com/db47h/intcode/vm and github.com/db47h/intcode/driver.
//
// Usage:
//
//	intcode [flags] [filename]
//
//	-amp phases
//		  run a chain of amplifiers with the given comma separated phase settings
//	-ascii
//		  ASCII mode: exchange text with the program instead of numbers
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump registers and memory upon exit
//	-grow limit
//		  let memory grow up to limit cells (default 0: disabled)
//	-input values
//		  comma separated values to feed the program (can be specified multiple times)
//	-loop phases
//		  run a feedback loop of amplifiers with the given comma separated phase settings
//	-noraw
//		  disable raw terminal IO
//	-noshrink
//		  do not trim trailing zero cells from memory dumps
//	-program filename
//		  load program from file filename (default "input.txt")
//	-search
//		  search the permutation of the -amp or -loop phases that yields the highest signal
//	-set addr=value
//		  set memory cell addr to value before running (can be specified multiple times)
//	-size int
//		  runtime memory size in cells (default 10 times the program size)
//	-strict
//		  fail instead of waiting for input when the input queue is empty
//
// The program file can also be given as the first non-flag argument.
//
// -debug: will print a full stacktrace should the VM crash, together with the
// VM registers and instruction count.
//
// -input: values are fed to the VM before it starts. Once they are consumed,
// and unless -strict is set, intcode reads more input from stdin, one line of
// comma separated values at a time. Reaching the end of stdin while the
// program waits for input terminates the program.
//
// -ascii: output values in the range 0..127 are printed as characters, larger
// values are printed as decimal numbers on a line of their own. Input is read
// from stdin one line at a time and each byte is fed to the VM, including the
// final newline. Upon startup in ASCII mode, intcode switches the terminal to
// raw mode unless stdin has been redirected or -noraw is given. In raw mode,
// CTRL-D ends input.
//
// -set: patches the program before running, as in "-set 1=12 -set 2=2". The
// address must lie within the program.
//
// -amp, -loop: run several instances of the program, one per phase setting,
// where each instance first receives its phase setting then the output of the
// previous instance. The first instance gets an initial signal of 0. With
// -loop, the output of the last instance is fed back to the first one until
// the last one halts. The final signal is printed on stdout. -input cannot be
// used in these modes.
//
// -dump: writes the PC, relative base and memory of the VM to stdout once it
// has stopped, as in:
//
//	pc=8 rb=0
//	3500,9,10,70,2,3,11,0,99,30,40,50
//
// Trailing zero cells are trimmed unless -noshrink is given. Ignored in
// amplifier modes.
package main
