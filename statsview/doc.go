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

// Package statsview provides a HTTP server offering runtime statistics of the
// gopher6502 process. It is useful for watching memory and goroutine use
// during long runs of the CPU.
//
// The server is only available when the program is built with the statsview
// build tag. Without the tag, Launch() returns ErrNotAvailable.
//
// The underlying functionality is provided by "github.com/go-echarts/statsview"
// and after launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
package statsview

import "errors"

// DefaultAddress is the address used by the gopher6502 command.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// ErrNotAvailable is returned by Launch() when the program has been built
// without the statsview build tag.
var ErrNotAvailable = errors.New("statsview not available")
