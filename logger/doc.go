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

// Package logger is the central log for the emulator. Entries are tagged
// strings and are added with the Log() and Logf() functions.
//
// Every logging request is accompanied by a Permission. The Permission is
// asked whether logging is allowed before the entry is created. Use the Allow
// value when an entry should always be made.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry and a repeat count. The number of entries is capped and the oldest
// entries are dropped once the cap has been reached.
//
// For testing purposes, or in other situations where a separate log is
// useful, a new Logger can be created with NewLogger().
package logger
