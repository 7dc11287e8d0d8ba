// Package data embeds the rule and dictionary files the library ships with.
package data

import _ "embed"

// Words is the dictionary of Vietnamese syllables, one per line.
//
//go:embed words.txt
var Words []byte

// Placements holds the accent placement rules in YAML.
//
//go:embed placements.yaml
var Placements []byte

// IY holds the i/y spelling rules in YAML.
//
//go:embed iy.yaml
var IY []byte
