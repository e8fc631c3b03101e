// Package config bootstraps, loads, and exposes pwna configuration data.
//
// The configuration lives in a single YAML file (by default
// ~/.config/pwna/pwna.yaml) holding the HTTP root and default listen port.
// Bootstrap writes defaults when the configuration directory is missing and
// otherwise parses the existing file. Keys are checked lazily through the
// Directory and Port accessors, which return a MissingKeyError when the file
// omits them.
package config
