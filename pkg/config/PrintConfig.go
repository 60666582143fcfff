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
	"gopkg.in/yaml.v3"
)

// PrintConfig writes the configuration to w as YAML.
func PrintConfig(w io.Writer, c mapper) error {
	b, err := yaml.Marshal(c.Map())
	if err != nil {
		return errors.Wrap(err, "error serializing config")
	}
	fmt.Fprintln(w, "=================================================")
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "-------------------------------------------------")
	fmt.Fprint(w, string(b))
	fmt.Fprintln(w, "=================================================")
	return nil
}
