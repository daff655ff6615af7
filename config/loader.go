package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target is the builder surface a mapping file applies to.
// *jsonmap.Builder[T] satisfies it.
type Target interface {
	IncludeField(memberName, jsonName string) error
	ExcludeField(memberName string) error
	SetReferencing(enabled bool)
}

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates its structure.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// validate checks structural consistency; member resolution against actual
// types happens in Apply.
func validate(f *File) error {
	if f.Version != "1" {
		return fmt.Errorf("unsupported mapping file version %q", f.Version)
	}

	seen := map[string]struct{}{}

	for i := range f.Types {
		tc := &f.Types[i]
		if tc.Type == "" {
			return fmt.Errorf("types[%d]: missing type name", i)
		}

		if _, ok := seen[tc.Type]; ok {
			return fmt.Errorf("duplicate type entry %q", tc.Type)
		}

		seen[tc.Type] = struct{}{}

		excluded := map[string]struct{}{}
		for _, name := range tc.Exclude {
			if name == "" {
				return fmt.Errorf("%s: empty member name in exclude list", tc.Type)
			}

			excluded[name] = struct{}{}
		}

		for _, fc := range tc.Fields {
			if fc.Member == "" {
				return fmt.Errorf("%s: field entry with empty member name", tc.Type)
			}

			if _, ok := excluded[fc.Member]; ok {
				return fmt.Errorf("%s: member %q is both included and excluded", tc.Type, fc.Member)
			}
		}
	}

	return nil
}

// Apply configures target from a single type entry. Excludes are applied
// before fields; field entries naming excluded members are therefore
// silently dropped by the builder's add policy.
func Apply(target Target, tc *TypeConfig) error {
	if tc == nil {
		return fmt.Errorf("nil type configuration")
	}

	if tc.Referencing != nil {
		target.SetReferencing(*tc.Referencing)
	}

	for _, name := range tc.Exclude {
		if err := target.ExcludeField(name); err != nil {
			return fmt.Errorf("%s: exclude %q: %w", tc.Type, name, err)
		}
	}

	for _, fc := range tc.Fields {
		if err := target.IncludeField(fc.Member, fc.Name); err != nil {
			return fmt.Errorf("%s: field %q: %w", tc.Type, fc.Member, err)
		}
	}

	return nil
}
