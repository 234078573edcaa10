package urlbuilder

import (
	"fmt"
	"strings"
)

// StripMetadata appends the strip-metadata flag token ("sm"), removing EXIF
// and similar metadata from the result.
func (c *Chain) StripMetadata() *Chain {
	return c.push(kindStripMetadata, "sm")
}

// StripColorProfile appends the strip-color-profile flag token ("scp").
func (c *Chain) StripColorProfile() *Chain {
	return c.push(kindStripColorProfile, "scp")
}

// Preset appends a preset token ("pr:name1,name2") applying one or more
// server-side presets. At least one name is required.
func (c *Chain) Preset(names ...string) *Chain {
	if len(names) == 0 {
		panic("urlbuilder: preset requires at least one name")
	}
	return c.push(kindPreset, stringifyArgs("pr", strings.Join(names, ",")))
}

// MaxBytes appends a max-bytes token ("mb:count") capping the result size.
// The count must be positive.
func (c *Chain) MaxBytes(count int) *Chain {
	if count <= 0 {
		panic(fmt.Sprintf("urlbuilder: max-bytes count must be positive, got %d", count))
	}
	return c.push(kindMaxBytes, stringifyArgs("mb", count))
}

// CacheBuster appends a cache-buster token ("cb:value"). The value is opaque
// to the server; changing it defeats intermediate caches.
func (c *Chain) CacheBuster(value string) *Chain {
	return c.push(kindCacheBuster, stringifyArgs("cb", value))
}

// Filename appends a filename token ("fn:name") controlling the name the
// server reports in its Content-Disposition header.
func (c *Chain) Filename(name string) *Chain {
	return c.push(kindFilename, stringifyArgs("fn", name))
}
