// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

type ErrInvalidParameter struct {
	Name  string
	Value interface{}
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s with value %q", e.Name, fmt.Sprint(e.Value))
}
