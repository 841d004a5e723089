// Copyright (C) 2022-2023, VigilantDoomer
//
// This file is part of VigilantBSP program.
//
// VigilantBSP is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantBSP is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantBSP.  If not, see <https://www.gnu.org/licenses/>.

package bspscene

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Logger is a small mutex-guarded wrapper around the standard logger,
// giving callers a trace channel (Printf), a gated debug channel
// (Verbose) and a fatal channel (Panic) that never returns.
type Logger struct {
	mu       sync.Mutex
	out      *log.Logger
	err      *log.Logger
	verbose  int
}

// Log is the package-wide logging sink. The core has no CLI of its own
// to wire a -verbosity flag into, so callers set the level directly.
var Log = &Logger{
	out: log.New(os.Stdout, "", 0),
	err: log.New(os.Stderr, "", 0),
}

// SetVerbosity controls which Verbose(level, ...) calls are emitted.
func (l *Logger) SetVerbosity(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = level
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf(format, args...)
}

func (l *Logger) Verbose(level int, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.verbose {
		return
	}
	l.out.Printf(format, args...)
}

// Panic logs the formatted message and panics with it. Every error in
// this core is a programming or data invariant violation, so there is
// no recoverable-error return path: callers that want to turn this
// into a recoverable error do so with recover() at the boundary they
// control.
func (l *Logger) Panic(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	l.err.Printf("fatal: %s", msg)
	l.mu.Unlock()
	panic(errors.New(msg))
}
