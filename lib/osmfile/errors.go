// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

import "fmt"

// ArgumentError reports an unrecognized content-type or encoding name
// passed to an override setter. Value is the offending string.
type ArgumentError struct {
	What  string
	Value string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %q", e.What, e.Value)
}
