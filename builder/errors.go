// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is(err, ErrX). Implementations attach context
// with %w; sentinels are never formatted at definition site.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEdgeSpec indicates an EdgeSpec with missing endpoints.
var ErrBadEdgeSpec = errors.New("builder: invalid edge spec")

// ErrConstructFailed indicates that construction could not proceed (nil constructor,
// label for an unknown vertex).
var ErrConstructFailed = errors.New("builder: construction failed")
