// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"fmt"
)

// ErrParse is returned when coordinate text is not a numeric "lat,lon" pair.
type ErrParse struct {
	Text string
	Err  error
}

func (e *ErrParse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid coordinates %q: %s", e.Text, e.Err.Error())
	}
	return fmt.Sprintf("invalid coordinates %q, expecting \"lat,lon\"", e.Text)
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}
