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

// ErrRange is returned when a latitude or longitude is outside of its valid range.
type ErrRange struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

func (e *ErrRange) Error() string {
	return fmt.Sprintf("%s must be between %v and %v, received %v", e.Name, e.Min, e.Max, e.Value)
}
