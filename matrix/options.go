// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text codec (io.go).
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultElementVerb renders each element with T's default textual form.
	DefaultElementVerb = "%v"

	// DefaultIntegerBase is the base used to parse integer tokens.
	DefaultIntegerBase = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid = "matrix: WithElementVerb: verb must be a single fmt verb starting with '%'"
	panicBaseInvalid = "matrix: WithIntegerBase: base must be 0 or in [2,36]"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	verb string // DefaultElementVerb
	base int    // DefaultIntegerBase
}

// WithElementVerb sets the fmt verb used by Format/WriteTo for each element,
// e.g. "%.3f" or "%5d". The decorations ("| ", " ", "|") are fixed.
// Panics when verb is empty, lacks a leading '%' or holds more than one verb.
func WithElementVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") || strings.Count(strings.ReplaceAll(verb, "%%", ""), "%") != 1 {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// WithIntegerBase sets the base for parsing integer tokens (strconv rules:
// 0 means "infer from prefix", e.g. 0x1f). Float and complex tokens are
// always decimal. Panics on an unsupported base.
func WithIntegerBase(base int) Option {
	if base != 0 && (base < 2 || base > 36) {
		panic(panicBaseInvalid)
	}

	return func(o *Options) { o.base = base }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		verb: DefaultElementVerb,
		base: DefaultIntegerBase,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
