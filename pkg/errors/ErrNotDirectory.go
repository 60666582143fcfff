// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrNotDirectory struct {
	Path string
}

func (e *ErrNotDirectory) Error() string {
	return "path is not a directory: " + e.Path
}
