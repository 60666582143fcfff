// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

// CheckZoom returns an error if z is outside [MinZoom, MaxZoom].
func CheckZoom(z int) error {
	if z < MinZoom || z > MaxZoom {
		return &ErrInvalidZoom{Value: z}
	}
	return nil
}
