package abi

import (
	"math"

	"github.com/ruwak-dev/ruwak/errors"
)

// Boundary faults. These are never returned: the operation that detects one
// panics with a copy carrying the offending values, and errors.Is matches the
// copy against the sentinel.
var (
	ErrLenOverflow   = errors.New(errors.PhaseLower, errors.KindOverflow).Detail("len overflow").Build()
	ErrPtrOverflow   = errors.New(errors.PhaseLower, errors.KindOverflow).Detail("ptr overflow").Build()
	ErrRangeOverflow = errors.New(errors.PhaseReconstruct, errors.KindOverflow).Detail("range to overflow").Build()
	ErrOutOfBounds   = errors.New(errors.PhaseReconstruct, errors.KindOutOfBounds).Detail("memory range out of bounds").Build()
)

func fault(sentinel *errors.Error, details map[string]any) {
	err := *sentinel
	err.Details = details
	panic(&err)
}

func narrowLen(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		fault(ErrLenOverflow, map[string]any{"len": n})
	}
	return uint32(n)
}

func narrowAddr(p uintptr) uint32 {
	if uint64(p) > math.MaxUint32 {
		fault(ErrPtrOverflow, map[string]any{"ptr": uint64(p)})
	}
	return uint32(p)
}
