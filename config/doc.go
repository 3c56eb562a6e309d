// SPDX-License-Identifier: MIT

// Package config handles application configuration loading and validation.
//
// Configuration is read from a YAML file, decoded over Default() so that
// omitted keys keep their defaults, and validated using struct tags.
package config
