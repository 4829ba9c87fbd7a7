// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render writes the environment record in the formats consumed by the
// frontend build: a JSON document, a TypeScript module exporting
// `environment`, or a YAML document.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/models"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON       = config.FormatJSON
	FormatTypeScript = config.FormatTypeScript
	FormatYAML       = config.FormatYAML
)

const indent = "  "

// ErrUnknownFormat is returned by [Render] for formats other than
// [FormatJSON], [FormatTypeScript] and [FormatYAML].
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes env to w in the given format. Output for equal records is
// byte-identical.
func Render(w io.Writer, env models.Environment, format string) error {
	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case FormatJSON:
		err = writeJSON(&buf, env, "", "\n")
	case FormatTypeScript:
		err = writeJSON(&buf, env, "export const environment = ", ";\n")
	case FormatYAML:
		err = writeYAML(&buf, env)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("error encoding environment: %w", err)
	}

	if _, err = w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing environment: %w", err)
	}

	return nil
}

func writeJSON(buf *bytes.Buffer, env models.Environment, prefix, suffix string) error {
	body, err := json.MarshalIndent(env, "", indent)
	if err != nil {
		return err
	}

	buf.WriteString(prefix)
	buf.Write(body)
	buf.WriteString(suffix)

	return nil
}

func writeYAML(buf *bytes.Buffer, env models.Environment) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(len(indent))

	if err := enc.Encode(env); err != nil {
		return err
	}

	return enc.Close()
}
