// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"strconv"
	"strings"
)

// ParseLatLon parses a coordinate in "lat,lon" format, e.g., "38.9,-77.03".
func ParseLatLon(text string) (LatLon, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return LatLon{}, &ErrParse{Text: text}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLon{}, &ErrParse{Text: text, Err: err}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLon{}, &ErrParse{Text: text, Err: err}
	}
	return NewLatLon(lat, lon)
}
