// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

// NewLatLon returns a new coordinate.
// Returns an *ErrRange if lat is outside [-90, 90] or lon is outside [-180, 180].
func NewLatLon(lat float64, lon float64) (LatLon, error) {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return LatLon{}, &ErrRange{Name: "latitude", Value: lat, Min: MinLatitude, Max: MaxLatitude}
	}
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return LatLon{}, &ErrRange{Name: "longitude", Value: lon, Min: MinLongitude, Max: MaxLongitude}
	}
	return LatLon{Lat: lat, Lon: lon}, nil
}
