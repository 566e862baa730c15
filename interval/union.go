// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package interval

import "sort"

// Union is an ordered sequence of pairwise disjoint, non-empty intervals
// (spec §3 "IntervalUnion"). The zero value is the empty union. Callers
// build a Union with NewUnion and keep it normalized by always going through
// Reduce after any operation that might introduce overlaps or empties.
type Union struct {
	parts []Interval
}

// NewUnion builds a reduced Union from arbitrary (possibly overlapping,
// possibly empty) intervals.
func NewUnion(ivs ...Interval) Union {
	return Union{parts: ivs}.Reduce()
}

// FromInterval wraps a single interval as a (possibly empty) Union.
func FromInterval(iv Interval) Union {
	if iv.IsEmpty() {
		return Union{}
	}
	return Union{parts: []Interval{iv}}
}

// Reduce sorts by lower bound, merges overlapping or touching neighbors,
// and drops empty components, per spec §3.
func (u Union) Reduce() Union {
	parts := make([]Interval, 0, len(u.parts))
	for _, iv := range u.parts {
		if !iv.IsEmpty() {
			parts = append(parts, iv)
		}
	}
	if len(parts) == 0 {
		return Union{}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Lo.Cmp(parts[j].Lo) < 0 })
	merged := make([]Interval, 0, len(parts))
	cur := parts[0]
	for _, iv := range parts[1:] {
		if cur.Hi.Cmp(iv.Lo) >= 0 {
			cur = New(cur.Lo, cur.Hi.Max(iv.Hi))
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	merged = append(merged, cur)
	return Union{parts: merged}
}

// IsEmpty reports whether the union has no components.
func (u Union) IsEmpty() bool { return len(u.parts) == 0 }

// Equal reports whether u and o have identical components in the same
// order; both are assumed reduced, so this is exact rather than a
// set-equality test.
func (u Union) Equal(o Union) bool {
	if len(u.parts) != len(o.parts) {
		return false
	}
	for i, p := range u.parts {
		if p != o.parts[i] {
			return false
		}
	}
	return true
}

// Parts returns the union's disjoint components in ascending order.
func (u Union) Parts() []Interval { return u.parts }

// Diameter is the sum of component diameters; an infinite diameter
// propagates (spec §3).
func (u Union) Diameter() Extended {
	total := Extended(0)
	for _, iv := range u.parts {
		total = total.Add(iv.Diameter())
	}
	return total
}

// Bounds returns the smallest interval covering every component, or Empty()
// if the union is empty.
func (u Union) Bounds() Interval {
	if u.IsEmpty() {
		return Empty()
	}
	lo, hi := u.parts[0].Lo, u.parts[0].Hi
	for _, iv := range u.parts[1:] {
		lo = lo.Min(iv.Lo)
		hi = hi.Max(iv.Hi)
	}
	return New(lo, hi)
}

// Contains reports whether v lies in any component.
func (u Union) Contains(v Extended) bool {
	for _, iv := range u.parts {
		if iv.Contains(v) {
			return true
		}
	}
	return false
}

// Intersect intersects every component of u with every component of o,
// keeping only the non-empty results, then reduces. This is the
// component-wise restriction spec §4.3's "Contraction" describes.
func (u Union) Intersect(o Union) Union {
	var out []Interval
	for _, a := range u.parts {
		for _, b := range o.parts {
			if r := a.Intersect(b); !r.IsEmpty() {
				out = append(out, r)
			}
		}
	}
	return Union{parts: out}.Reduce()
}

// Subset reports whether every point of u lies within some component of o;
// used to check the "intervals never widen" invariant of spec §8.
func (u Union) Subset(o Union) bool {
	// o is reduced, so a connected component a is covered only if a
	// single component of o contains both of its endpoints.
	for _, a := range u.parts {
		covered := false
		for _, b := range o.parts {
			if b.Contains(a.Lo) && b.Contains(a.Hi) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func (u Union) String() string {
	if u.IsEmpty() {
		return "{}"
	}
	s := ""
	for i, iv := range u.parts {
		if i > 0 {
			s += " U "
		}
		s += iv.String()
	}
	return s
}
