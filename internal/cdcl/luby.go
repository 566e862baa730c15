// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

// Luby generates the Luby restart sequence 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...:
// self-similar, so restarts neither stall on hard instances (like a fixed
// interval) nor explode too fast (like a pure geometric one).
type Luby struct {
	u, v uint
}

// NewLuby returns a generator positioned at the start of the sequence.
func NewLuby() *Luby {
	return &Luby{u: 1, v: 1}
}

// Next returns the next term of the sequence.
func (l *Luby) Next() uint {
	ret := l.v
	if l.u&(-l.u) == l.v {
		l.u++
		l.v = 1
	} else {
		l.v *= 2
	}
	return ret
}
