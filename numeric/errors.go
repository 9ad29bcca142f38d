// SPDX-License-Identifier: MIT
// Package numeric: sentinel errors. Callers match them with errors.Is.

package numeric

import "errors"

// ErrUnknownPrecision is returned by ParsePrecision (and every runtime
// selector built on it) for a tag outside the float/double family.
// There is no fallback width: "native" and friends are rejected.
var ErrUnknownPrecision = errors.New("numeric: unknown precision")
