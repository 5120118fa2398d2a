// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "fmt"

// fenErrorMessages is the fixed message table for FEN validation errors,
// keyed by numeric code per spec §4.C. Code 1 has two variants selected
// by onlyPosition.
var fenErrorMessages = map[int]string{
	1:  "FEN string must have 6 whitespace separated fields",
	2:  "piece placement field must have 8 ranks separated by '/'",
	3:  "empty-square digits must not be adjacent within a rank",
	4:  "piece placement field contains an invalid piece letter",
	5:  "each rank must account for exactly 8 squares",
	6:  "full move number must be a positive integer",
	7:  "half-move clock must be a non-negative integer",
	8:  "en passant target square is invalid for the side to move",
	9:  "castling availability field is malformed",
	10: "side to move must be 'w' or 'b'",
	11: "white has more than 16 pieces",
	12: "black has more than 16 pieces",
	13: "white has more than 8 pawns",
	14: "black has more than 8 pawns",
	15: "white must have exactly one king",
	16: "black must have exactly one king",
}

const fenErrorMessageOnlyPosition1 = "position-only FEN string must have 1 whitespace separated field"

// FenError reports a FEN validation failure with its numeric code.
type FenError struct {
	Code    int
	Message string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("chesscore: invalid FEN (code %d): %s", e.Code, e.Message)
}

func newFenError(code int, onlyPosition bool) *FenError {
	msg := fenErrorMessages[code]
	if code == 1 && onlyPosition {
		msg = fenErrorMessageOnlyPosition1
	}
	return &FenError{Code: code, Message: msg}
}

// MoveError reports an illegal or malformed move construction attempt.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("chesscore: illegal move: %s", e.Reason)
}

func newMoveError(format string, args ...any) *MoveError {
	return &MoveError{Reason: fmt.Sprintf(format, args...)}
}
