// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// PrintViperSettings writes all viper settings to w as YAML.
func PrintViperSettings(w io.Writer, v *viper.Viper) error {
	settings := v.AllSettings()
	for _, key := range []string{"aws-secret-access-key", "aws-session-token"} {
		if s, ok := settings[key].(string); ok {
			settings[key] = redact(s)
		}
	}
	b, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "error serializing viper settings")
	}
	fmt.Fprintln(w, "=================================================")
	fmt.Fprintln(w, "Viper:")
	fmt.Fprintln(w, "-------------------------------------------------")
	fmt.Fprint(w, string(b))
	fmt.Fprintln(w, "=================================================")
	return nil
}
