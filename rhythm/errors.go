package rhythm

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind shared by every validation failure.
// Parameter-specific sentinels below wrap it, so callers may match either
// the kind (errors.Is(err, ErrInvalidArgument)) or the exact parameter.
var ErrInvalidArgument = errors.New("rhythm: invalid argument")

var (
	// ErrStepsNotPositive indicates steps ≤ 0.
	ErrStepsNotPositive = fmt.Errorf("%w: steps must be a positive integer", ErrInvalidArgument)
	// ErrOnsetsOutOfRange indicates onsets < 0 or onsets > steps.
	ErrOnsetsOutOfRange = fmt.Errorf("%w: onsets must satisfy 0 <= onsets <= steps", ErrInvalidArgument)
	// ErrEvennessOutOfRange indicates evenness outside [0.0, 1.0] (NaN included).
	ErrEvennessOutOfRange = fmt.Errorf("%w: evenness must lie in [0.0, 1.0]", ErrInvalidArgument)
)
