package config

// File is the root of a YAML mapping file.
type File struct {
	// Version of the file format. Defaults to "1".
	Version string `yaml:"version"`
	// Types lists per-type mapping configuration.
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig configures the mapping of one target type.
type TypeConfig struct {
	// Type names the target type as "pkg.Type".
	Type string `yaml:"type"`
	// Referencing toggles shared-instance reference tracking. Nil leaves the
	// builder's flag untouched.
	Referencing *bool `yaml:"referencing"`
	// Fields lists members to include.
	Fields []FieldConfig `yaml:"fields"`
	// Exclude lists member names forbidden from the mapping table.
	Exclude []string `yaml:"exclude"`
}

// FieldConfig includes a single member.
type FieldConfig struct {
	// Member is the Go name of the field or property.
	Member string `yaml:"member"`
	// Name is the JSON field name; empty means the member's default name.
	Name string `yaml:"name"`
}

// TypeFor returns the configuration for a type name, or nil.
func (f *File) TypeFor(name string) *TypeConfig {
	for i := range f.Types {
		if f.Types[i].Type == name {
			return &f.Types[i]
		}
	}

	return nil
}
