package project

import (
	"bytes"
	"maps"
	"slices"
)

// Gradle defaults every generated project starts with.
var defaultProperties = map[string]string{
	"org.gradle.daemon":             "true",
	"org.gradle.jvmargs":            "-Xms512M -Xmx1G -Dfile.encoding=UTF-8 -Dconsole.encoding=UTF-8",
	"org.gradle.configureondemand": "false",
}

// PropertyBag is the content of gradle.properties. Later writes replace earlier ones.
type PropertyBag map[string]string

// NewPropertyBag returns a bag seeded with the Gradle defaults.
func NewPropertyBag() PropertyBag {
	return maps.Clone(defaultProperties)
}

// Set records a property, replacing any previous value.
func (b PropertyBag) Set(key, value string) {
	b[key] = value
}

// SetDefault records a property only if it is not set yet.
func (b PropertyBag) SetDefault(key, value string) {
	if _, ok := b[key]; !ok {
		b[key] = value
	}
}

// Get returns a property value.
func (b PropertyBag) Get(key string) (string, bool) {
	v, ok := b[key]
	return v, ok
}

// Keys returns the property names in sorted order.
func (b PropertyBag) Keys() []string {
	return slices.Sorted(maps.Keys(b))
}

// Render formats the bag as key=value lines sorted by key.
func (b PropertyBag) Render() []byte {
	var buf bytes.Buffer
	for _, k := range b.Keys() {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(b[k])
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
