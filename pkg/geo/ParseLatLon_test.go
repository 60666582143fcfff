// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLon(t *testing.T) {
	c, err := ParseLatLon("38.9,-77.03")
	require.NoError(t, err)
	assert.Equal(t, LatLon{Lat: 38.9, Lon: -77.03}, c)

	c, err = ParseLatLon(" 1.5 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, LatLon{Lat: 1.5, Lon: 2}, c)
}

func TestParseLatLonInvalid(t *testing.T) {
	for _, text := range []string{"", "38.9", "38.9,-77.03,0", "abc,1", "1,abc", "1;2"} {
		_, err := ParseLatLon(text)
		require.Error(t, err, text)
		var parseErr *ErrParse
		require.True(t, errors.As(err, &parseErr), text)
		assert.Equal(t, text, parseErr.Text)
	}
}

func TestParseLatLonRange(t *testing.T) {
	_, err := ParseLatLon("91,0")
	require.Error(t, err)
	assert.IsType(t, &ErrRange{}, err)
}

func TestParseLatLonNotFinite(t *testing.T) {
	for _, text := range []string{"NaN,0", "0,NaN", "Inf,0", "-Inf,0", "0,+Inf"} {
		_, err := ParseLatLon(text)
		require.Error(t, err, text)
		assert.IsType(t, &ErrRange{}, err, text)
	}
}
