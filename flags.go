// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import (
	"fmt"
	"math/bits"
)

// Flag is a single move or castling-rights attribute bit.
type Flag uint16

const (
	FlagNormal Flag = 1 << iota
	FlagCapture
	FlagEnPassant
	FlagDoubleAdvance
	FlagPromotion
	FlagKSideCastle
	FlagQSideCastle
	FlagCheck
	FlagCheckmate
	FlagMoveBlocked
	FlagMoveIllegal
	FlagPinned
)

// Castling-rights flags live in their own namespace: a CastlingRights
// value never mixes with a move's Flags, so reusing low bits is safe.
const (
	CastleKingside Flag = 1 << iota
	CastleQueenside
)

var flagNames = map[Flag]string{
	FlagNormal:        "normal",
	FlagCapture:       "capture",
	FlagEnPassant:     "enPassant",
	FlagDoubleAdvance: "doubleAdvance",
	FlagPromotion:     "promotion",
	FlagKSideCastle:   "kSideCastle",
	FlagQSideCastle:   "qSideCastle",
	FlagCheck:         "check",
	FlagCheckmate:     "checkmate",
	FlagMoveBlocked:   "moveBlocked",
	FlagMoveIllegal:   "moveIllegal",
	FlagPinned:        "pinned",
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("flag(%#x)", uint16(f))
}

// Flags is an unordered set of Flag bits.
type Flags struct {
	bits uint16
}

// NewFlags builds a Flags set containing the given flags.
func NewFlags(flags ...Flag) Flags {
	var f Flags
	for _, flag := range flags {
		f.Add(flag)
	}
	return f
}

// Add inserts flag into the set.
func (f *Flags) Add(flag Flag) {
	f.bits |= uint16(flag)
}

// Remove deletes flag from the set. Removing an absent flag is an error
// unless silent is true, in which case it is a no-op.
func (f *Flags) Remove(flag Flag, silent ...bool) error {
	if f.bits&uint16(flag) == 0 {
		if len(silent) > 0 && silent[0] {
			return nil
		}
		return fmt.Errorf("chesscore: flag %s is not set", flag)
	}
	f.bits &^= uint16(flag)
	return nil
}

// Clear empties the set.
func (f *Flags) Clear() {
	f.bits = 0
}

// Contains reports whether flag is a member of the set.
func (f Flags) Contains(flag Flag) bool {
	return f.bits&uint16(flag) != 0
}

// Copy returns an independent copy of f.
func (f Flags) Copy() Flags {
	return Flags{bits: f.bits}
}

// Replace removes old and inserts new in a single step. Removing an
// absent old flag is an error unless silent is true.
func (f *Flags) Replace(old, new Flag, silent ...bool) error {
	if err := f.Remove(old, silent...); err != nil {
		return err
	}
	f.Add(new)
	return nil
}

// Len returns the number of flags currently set.
func (f Flags) Len() int {
	return bits.OnesCount16(f.bits)
}
