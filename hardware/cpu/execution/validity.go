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

package execution

import (
	"errors"
	"fmt"
)

// ErrInconsistentResult is returned by IsValid() when the result does not
// agree with the instruction definition.
var ErrInconsistentResult = errors.New("inconsistent result")

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: %w: not finalised", ErrInconsistentResult)
	}

	if r.Defn == nil {
		return fmt.Errorf("execution: %w: no definition for instruction", ErrInconsistentResult)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return fmt.Errorf("execution: %w: unexpected page fault", ErrInconsistentResult)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("execution: %w: unexpected number of bytes read during decode (%d instead of %d)",
			ErrInconsistentResult, r.ByteCount, r.Defn.Bytes)
	}

	// a branch that is not taken can't have a page fault
	if r.Defn.IsBranch() && !r.BranchSuccess && r.PageFault {
		return fmt.Errorf("execution: %w: page fault on a branch that was not taken", ErrInconsistentResult)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() && r.BranchSuccess {
		expected++
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return fmt.Errorf("execution: %w: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			ErrInconsistentResult, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
