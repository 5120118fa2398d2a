// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

// Clock is a wall-clock collaborator the core calls to stamp
// Turn.Meta.MoveTime (§6). The core depends only on this signature and
// never on a particular clock implementation.
type Clock func() int64

// Annotation is opaque to the core. Callers append to Turn.Annotations
// directly (NAG codes, engine evaluations, arrows) after a move is made;
// the core itself never inspects or produces one.
type Annotation any
