// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrDirectoryNotFound struct {
	Path string
}

func (e *ErrDirectoryNotFound) Error() string {
	return "directory does not exist: " + e.Path
}
