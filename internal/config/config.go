//
// corvid - a bitboard chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables, either
// left at their defaults, read from a TOML config file, or set by command
// line options (§10).
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/internal/util"
)

var (
	// ConfFile holds the path to the config file, resolved relative to the
	// working directory, the executable, or the user's home directory.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overridable by cmd line or config file.
	LogLevel = 4

	// SearchLogLevel is the search-specific log level.
	SearchLogLevel = 4

	// TestLogLevel is the log level used by test runs.
	TestLogLevel = 5

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if found) over the compiled-in defaults.
// A missing file is not an error; the engine runs on defaults alone.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String renders the current configuration settings and values, using
// reflection to avoid repeating each field name by hand.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search Config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Search).Elem())
	sb.WriteString("\nEvaluation Config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Eval).Elem())
	return sb.String()
}

func writeFields(sb *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(sb, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
