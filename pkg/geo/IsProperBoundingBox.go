// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

// IsProperBoundingBox returns true if lowerRight is down-right of upperLeft.
// Boxes with zero width or zero height are accepted, identical corners are not.
func IsProperBoundingBox(upperLeft LatLon, lowerRight LatLon) bool {
	return lowerRight.IsDownRightOf(upperLeft)
}
