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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "MONITOR")
//	p, err := md.Parse()
//	switch p {
//	case ParseError:
//		return err
//	case ParseHelp:
//		return nil
//	}
//
// The first sub-mode is the default mode and is selected if the first
// argument does not name a mode. Once a mode has been selected a call to
// NewMode() prepares the flags for that mode. The flags are found by a
// second call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddHex("origin", 0x0200, "load address of program")
//		steps := md.AddInt("steps", 0, "maximum number of instructions")
//		p, err := md.Parse()
//		...
//		run(md.RemainingArgs(), *origin, *steps)
//	}
//
// Hexadecimal flags added with AddHex() accept values with a "0x" or "$"
// prefix, or without any prefix at all.
//
// The Visit() function can be used to discover which flags were specified
// on the command line, as opposed to those that have been left at their
// default value.
package modalflag
