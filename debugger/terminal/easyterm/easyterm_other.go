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

//go:build !unix

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// Initialise always returns ErrNotTerminal on this platform.
func (pt *Terminal) Initialise(inputFile *os.File) error {
	return fmt.Errorf("easyterm: %w: unsupported platform", ErrNotTerminal)
}

func (pt *Terminal) CleanUp() {}

func (pt *Terminal) CanonicalMode() error {
	return nil
}

func (pt *Terminal) CBreakMode() error {
	return nil
}

func (pt *Terminal) Flush() error {
	return nil
}

func (pt *Terminal) ReadKey() (byte, error) {
	return 0, fmt.Errorf("easyterm: %w", ErrNotTerminal)
}
