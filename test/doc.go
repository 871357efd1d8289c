// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from the
// tests in the rest of the module.
//
// The Expect*() functions report a failed expectation with t.Errorf() and
// allow the test to continue. They return true if the expectation was met so
// that the caller can decide whether to output additional context. The
// Demand*() functions are similar but call t.Fatalf().
//
// Success and failure are decided by the type of the value. For bool types
// true is success. For error types nil is success. The untyped nil is also a
// success because that is what a nil error looks like once it has been
// converted to an interface.
//
// All functions take an optional list of tags. The tags are prepended to any
// failure message and help to identify which iteration of a table test
// failed.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison.
package test
