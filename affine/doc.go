// SPDX-License-Identifier: MIT

// Package affine models N-dimensional affine transforms as ordered chains of
// atomic steps and materializes them as homogeneous matrices.
//
// An Atomic is one indivisible step: Offset, OffsetAll, Scale, ScaleAll,
// Reflect, Shear, Rotate, or a raw MatrixOp. Every variant carries an Inverse
// flag; Invert toggles it in O(1) and the numeric inverse is only computed
// when the step is materialized.
//
// A Transformation is a list of atomics applied in list order. It converts to
// a single (dim+1)×(dim+1) matrix through ToMatrix:
//
//	column convention: M = Mₙ·…·M₁·M₀   (points are columns, p' = M·p)
//	row convention:    M = M₀·M₁·…·Mₙ   (points are rows,    p' = p·M)
//
// The two conventions produce transposed matrices for the same chain.
// Callers must use one convention consistently.
//
// Compress rewrites a chain into an equivalent shorter one: runs of the same
// step on the same axes fold analytically (offsets add, scales multiply,
// shear tangents add, rotation angles add, reflection pairs cancel) and
// anything else collapses into one MatrixOp.
package affine
