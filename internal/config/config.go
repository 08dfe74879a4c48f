// SPDX-License-Identifier: EPL-2.0

// Package config reads settings from environment variables. It must not
// import the logger, which is configured from it.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables (e.g. "AUDFMT_").
type Conf struct{ prefix string }

func New() Conf { return Conf{} }

// Prefix returns a child view with p appended to the prefix.
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for k.
func (c Conf) Key(k string) string { return c.prefix + k }

// Get returns the trimmed value, or def when unset or blank.
func (c Conf) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.Key(key)))
	if v == "" {
		return def
	}
	return v
}

// GetBool accepts 1, true and yes as true; any other value is false.
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.Get(key, ""))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt returns def for unset, negative or non-numeric values.
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.Get(key, ""))
	if err != nil || n < 0 {
		return def
	}
	return n
}
