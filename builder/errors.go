// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates n < MinNodes.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadScenario indicates a scenario document that does not describe a
// square non-empty matrix.
var ErrBadScenario = errors.New("builder: malformed scenario")

// builderErrorf wraps err with the constructor name.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
