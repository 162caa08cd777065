// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"time"
)

// Options tunes how the registry wires its engines. Zero values fall back to
// detected binaries and DefaultTimeout.
type Options struct {
	Timeout        time.Duration
	DefaultProfile string
	AwkBinary      string
	JqBinary       string
	GrepBinary     string
	SedBinary      string
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

func (o Options) orDefault(binary, fallback string) string {
	if binary != "" {
		return binary
	}
	return fallback
}

// Registry holds every profile and the engine serving it. Profiles keep their
// definition order for the UI's profile cycling; a runtime "custom" profile
// built from the features editor is appended at the end.
type Registry struct {
	profiles []*Profile
	engines  map[string]Engine
	defaults Options
}

// NewRegistry builds the default profile set wired to the configured (or
// detected) engine binaries.
func NewRegistry(opts Options) *Registry {
	r := &Registry{engines: make(map[string]Engine), defaults: opts}
	timeout := opts.timeout()
	grep := opts.orDefault(opts.GrepBinary, "grep")

	for _, p := range defaultProfiles() {
		var eng Engine
		switch p.ID {
		case ProfileGoRegex:
			eng = newGoRegexEngine(p)
		case ProfilePCRE:
			eng = newGrepEngine(p, grep, "-P", timeout)
		case ProfileGrep:
			eng = newGrepEngine(p, grep, "-E", timeout)
		case ProfileSed:
			eng = newSedEngine(p, opts.orDefault(opts.SedBinary, "sed"), timeout)
		case ProfileAwk:
			eng = newAwkEngine(p, opts.AwkBinary, timeout)
		case ProfileJq:
			eng = newJqEngine(p, opts.orDefault(opts.JqBinary, "jq"), timeout)
		}
		r.profiles = append(r.profiles, p)
		r.engines[p.ID] = eng
	}
	return r
}

// Profiles returns the registered profiles in display order.
func (r *Registry) Profiles() []*Profile { return r.profiles }

// Profile looks up a profile by ID.
func (r *Registry) Profile(id string) (*Profile, bool) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Engine returns the engine serving the given profile ID.
func (r *Registry) Engine(id string) (Engine, bool) {
	eng, ok := r.engines[id]
	return eng, ok
}

// DefaultID returns the profile selected at startup: the configured one when
// it exists, otherwise the native Go engine.
func (r *Registry) DefaultID() string {
	if _, ok := r.Profile(r.defaults.DefaultProfile); ok {
		return r.defaults.DefaultProfile
	}
	return ProfileGoRegex
}

// SetCustom registers (or replaces) the "custom" profile with the given
// feature set, backed by the native engine, and returns it.
func (r *Registry) SetCustom(features map[string]bool) *Profile {
	enabled := make(map[string]bool, len(features))
	for f, on := range features {
		if on {
			enabled[f] = true
		}
	}
	custom := &Profile{
		ID:          ProfileCustom,
		Name:        "Custom",
		Description: "Custom feature set",
		Kind:        KindRegex,
		Features:    enabled,
	}

	if _, exists := r.Profile(ProfileCustom); exists {
		for i, p := range r.profiles {
			if p.ID == ProfileCustom {
				r.profiles[i] = custom
			}
		}
	} else {
		r.profiles = append(r.profiles, custom)
	}
	r.engines[ProfileCustom] = newGoRegexEngine(custom)
	return custom
}
