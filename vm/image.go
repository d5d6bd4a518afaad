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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Program is an Intcode program, i.e. the initial memory image of a VM.
type Program []Cell

func (p Program) String() string {
	var b strings.Builder
	Dump(&b, p)
	return b.String()
}

var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type programText struct {
	Cells []*cellText `parser:"@@ ( ',' @@ )*"`
}

type cellText struct {
	Pos   lexer.Position
	Value string `parser:"@Int"`
}

var programParser = participle.MustBuild[programText](
	participle.Lexer(programLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a program as a comma separated list of base 10 integers from the
// supplied io.Reader. Leading and trailing white space is ignored.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader) (Program, error) {
	t, err := programParser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(err, "parse failed")
	}
	p := make(Program, 0, len(t.Cells))
	for _, c := range t.Cells {
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", c.Pos)
		}
		p = append(p, Cell(v))
	}
	return p, nil
}

// ParseString parses a program from a string.
func ParseString(s string) (Program, error) {
	return Parse("", strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := Parse(fileName, bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	return p, nil
}

// Dump writes the given cells to w in the same format as accepted by Parse.
func Dump(w io.Writer, cells []Cell) error {
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 24)
	for k, v := range cells {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		if _, err := ew.Write(b); err != nil {
			return err
		}
	}
	return ew.Err
}
