package analyzer

import "errors"

// Recoverable analysis failures. All three downgrade to a nil result and an
// advisory message; none of them should ever abort a batch run.
var (
	// ErrInvalidInput marks a zero-area pixel buffer or a non-positive grid
	// or target configuration. No statistics are computed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCandidateShapes means the generator produced an empty shape set:
	// the target area and border exclusion are incompatible with the grid.
	ErrNoCandidateShapes = errors.New("no candidate shapes")

	// ErrNoCandidateRectangle means every generated shape failed to fit the
	// bounded grid.
	ErrNoCandidateRectangle = errors.New("no candidate rectangle")
)
