// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import "testing"

func TestLuby(t *testing.T) {
	luby := NewLuby()
	times := make(map[uint]uint)
	for i := 0; i < 127; i++ {
		n := luby.Next()
		times[n] += n
	}
	timePerStrat := uint(64)
	for k, v := range times {
		if v != timePerStrat {
			t.Errorf("wrong total strategy time for %d: %d != %d", k, v, timePerStrat)
		}
	}
}
