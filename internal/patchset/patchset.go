// Package patchset loads declarative AOB patch lists from YAML and turns
// them into reversible edits over a memory region.
//
// A patch file looks like:
//
//	patches:
//	  - name: skip-license-check
//	    pattern: "74 ?? 48 8b 05"
//	    offset: 0
//	    occurrence: 1
//	    replace: "eb"
package patchset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zhuweiyou/rawmem"
)

var (
	// ErrPatternNotFound is returned when a pattern has fewer matches than
	// the requested occurrence.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrOutsideRegion is returned when a replacement would write outside
	// the scanned region.
	ErrOutsideRegion = errors.New("replacement outside region")
)

// Set is a parsed patch file.
type Set struct {
	Patches []*Entry `yaml:"patches"`
}

// Entry describes one patch: the bytes in Replace are written Offset bytes
// from the Occurrence-th match of Pattern.
type Entry struct {
	Name       string `yaml:"name"`
	Pattern    string `yaml:"pattern"`
	Offset     int64  `yaml:"offset,omitempty"`
	Occurrence int    `yaml:"occurrence,omitempty"`
	Replace    string `yaml:"replace"`
	Enabled    *bool  `yaml:"enabled,omitempty"`

	compiled    *rawmem.Pattern
	replacement []byte
}

// IsEnabled reports whether the entry takes part in Resolve.
func (e *Entry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// Replacement returns the decoded replacement bytes.
func (e *Entry) Replacement() []byte {
	return append([]byte(nil), e.replacement...)
}

// Load reads and parses the patch file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch file: %w", err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a patch file strictly and validates every entry.
func Parse(data []byte) (*Set, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode patch file: %w", err)
	}

	seen := make(map[string]bool, len(set.Patches))
	for i, e := range set.Patches {
		if e == nil {
			return nil, fmt.Errorf("patch %d: empty entry", i)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("patch %d: missing name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("patch %q: duplicate name", e.Name)
		}
		seen[e.Name] = true

		if err := e.compile(); err != nil {
			return nil, fmt.Errorf("patch %q: %w", e.Name, err)
		}
	}

	return &set, nil
}

func (e *Entry) compile() error {
	p, err := rawmem.Compile(e.Pattern)
	if err != nil {
		return err
	}
	e.compiled = p

	e.replacement, err = rawmem.DecodeHex(e.Replace)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}

	if e.Occurrence < 0 {
		return fmt.Errorf("invalid occurrence %d", e.Occurrence)
	}
	if e.Occurrence == 0 {
		e.Occurrence = 1
	}
	return nil
}

// Resolved is an entry located inside a region.
type Resolved struct {
	Entry  *Entry
	Match  rawmem.Address
	Target rawmem.Address
}

// Resolve locates every enabled entry in region. It fails on the first
// entry that cannot be placed.
func (s *Set) Resolve(region rawmem.Region, logger zerolog.Logger) ([]Resolved, error) {
	var resolved []Resolved
	for _, e := range s.Patches {
		if !e.IsEnabled() {
			logger.Debug().Str("patch", e.Name).Msg("patch disabled, skipping")
			continue
		}

		r, err := e.resolve(region)
		if err != nil {
			return nil, fmt.Errorf("patch %q: %w", e.Name, err)
		}

		logger.Debug().
			Str("patch", e.Name).
			Stringer("match", r.Match).
			Stringer("target", r.Target).
			Int("size", len(e.replacement)).
			Msg("patch resolved")
		resolved = append(resolved, r)
	}
	return resolved, nil
}

func (e *Entry) resolve(region rawmem.Region) (Resolved, error) {
	scanner := rawmem.NewScannerFor(e.compiled, region)

	addr, ok := scanner.FindFirst()
	for i := 1; ok && i < e.Occurrence; i++ {
		addr, ok = scanner.FindNext()
	}
	if !ok {
		return Resolved{}, fmt.Errorf("%w: occurrence %d of %q", ErrPatternNotFound, e.Occurrence, e.compiled)
	}

	rel := int64(addr-region.Start) + e.Offset
	if rel < 0 || uint64(rel)+uint64(len(e.replacement)) > uint64(region.Len) {
		return Resolved{}, fmt.Errorf("%w: offset %d from %s", ErrOutsideRegion, e.Offset, addr)
	}

	return Resolved{
		Entry:  e,
		Match:  addr,
		Target: region.Start.Add(uintptr(rel)),
	}, nil
}

// Build captures the current content at every resolved target and returns
// the patches as one edit set. Nothing is written until ApplyAll.
func Build(resolved []Resolved, logger zerolog.Logger) *rawmem.EditSet {
	set := rawmem.NewEditSet(logger)
	for _, r := range resolved {
		set.Add(rawmem.NewPatch(r.Target.Unchecked(), r.Entry.replacement))
	}
	return set
}
