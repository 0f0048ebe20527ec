package medialink

import (
	"errors"
	"fmt"

	"medialinks/pkg/filename"
)

const (
	// resourcePrefix is the namespace of template strings in the message catalog.
	resourcePrefix = "service."
	// ResourcePrefixField names the URL part before the words.
	ResourcePrefixField = "prefix"
	// ResourceSeparatorField names the string inserted between words.
	ResourceSeparatorField = "separator"
	// ResourceSuffixField names the URL part after the words.
	ResourceSuffixField = "suffix"
)

// ErrMissingTemplate is returned when a template string is absent from the catalog.
var ErrMissingTemplate = errors.New("missing template string")

// Lookup provides raw template strings by resource key.
type Lookup interface {
	// Lookup returns the string stored under key and whether it exists.
	Lookup(key string) (string, bool)
}

// ResourceKey returns the catalog key of one template field, e.g. "service.imdb.suffix".
func ResourceKey(k ServiceKey, field string) string {
	return resourcePrefix + k.Resource() + "." + field
}

// Builder turns parsed filenames into URLs. It is immutable and safe for concurrent use.
type Builder struct {
	templates [serviceKeyCount]Template
}

// NewBuilder resolves the template of every service key from lookup.
func NewBuilder(lookup Lookup) (*Builder, error) {
	b := &Builder{}
	for _, k := range Keys() {
		tmpl, err := resolveTemplate(lookup, k)
		if err != nil {
			return nil, err
		}
		b.templates[k] = tmpl
	}
	return b, nil
}

func resolveTemplate(lookup Lookup, k ServiceKey) (Template, error) {
	fields := []string{ResourcePrefixField, ResourceSeparatorField, ResourceSuffixField}
	values := make([]string, len(fields))
	for i, field := range fields {
		key := ResourceKey(k, field)
		value, ok := lookup.Lookup(key)
		if !ok {
			return Template{}, fmt.Errorf("%w: %s", ErrMissingTemplate, key)
		}
		values[i] = value
	}

	return Template{
		Prefix:    values[0],
		Separator: values[1],
		Suffix:    values[2],
	}, nil
}

// Template returns the resolved template of k.
func (b *Builder) Template(k ServiceKey) (Template, error) {
	if !k.Valid() {
		return Template{}, fmt.Errorf("%w: %d", ErrInvalidServiceKey, int(k))
	}
	return b.templates[k], nil
}

// Build returns the URL for k, or "" when the result holds nothing the service can link.
// Imdb links the identifier and ignores the words; every other key searches for the words.
func (b *Builder) Build(k ServiceKey, result filename.Result) (string, error) {
	tmpl, err := b.Template(k)
	if err != nil {
		return "", err
	}

	if k.UsesIdentifier() {
		if !result.HasIdentifier() {
			return "", nil
		}
		return tmpl.Prefix + result.Identifier + tmpl.Suffix, nil
	}

	if len(result.Words) == 0 {
		return "", nil
	}
	return tmpl.Expand(result.Words), nil
}

// Link parses name and builds the URL for k in one step.
func (b *Builder) Link(k ServiceKey, name string) (string, error) {
	return b.Build(k, filename.Parse(name))
}
