// SPDX-License-Identifier: MIT

package vector

import "math"

// ToSpherical converts Cartesian components to hyperspherical coordinates.
// MAIN DESCRIPTION:
//   - Result layout is [r, φ0, φ1, …, φ(n-2)] (same length as v).
//   - 2-D is plain polar form [r, atan2(y, x)].
//
// Implementation:
//   - Stage 1: r = Module().
//   - Stage 2: for k < n-2, φk = atan2(‖(x(k+1) … x(n-1))‖, xk) ∈ [0, π].
//   - Stage 3: φ(n-2) = atan2(x(n-1), x(n-2)) ∈ (−π, π].
//
// Behavior highlights:
//   - Length 0 or 1 vectors are returned as copies (r = x0 keeps the sign).
//   - The origin maps to all-zero angles.
//
// Complexity:
//   - Time O(n²) for the tail norms, Space O(n).
func (v Vector) ToSpherical() Vector {
	n := len(v.data)
	if n < 2 {
		return v.Clone()
	}
	out := New(v.kind, n)
	out.data[0] = v.Module()
	var tail Vector
	for k := 0; k < n-2; k++ {
		tail = Vector{kind: v.kind, data: v.data[k+1:]}
		out.data[k+1] = math.Atan2(tail.Module(), v.data[k])
	}
	out.data[n-1] = math.Atan2(v.data[n-1], v.data[n-2])

	return out
}

// ToCartesian is the inverse of ToSpherical.
// Implementation:
//   - x0 = r·cos φ0
//   - xk = r·sin φ0·…·sin φ(k-1)·cos φk
//   - x(n-1) = r·sin φ0·…·sin φ(n-2)
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector) ToCartesian() Vector {
	n := len(v.data)
	if n < 2 {
		return v.Clone()
	}
	out := New(v.kind, n)
	prod := v.data[0] // running r·Π sin φ
	for k := 0; k < n-1; k++ {
		out.data[k] = prod * math.Cos(v.data[k+1])
		prod *= math.Sin(v.data[k+1])
	}
	out.data[n-1] = prod

	return out
}
