package urlbuilder

import (
	"fmt"
	"strings"
)

// modifierKind identifies one modifier slot on a chain. Each kind may be
// consumed at most once.
type modifierKind uint8

const (
	kindResize modifierKind = iota
	kindCrop
	kindGravity
	kindQuality
	kindFormat
	kindBlur
	kindSharpen
	kindBackground
	kindPadding
	kindDPR
	kindRotate
	kindAutoRotate
	kindStripMetadata
	kindStripColorProfile
	kindTrim
	kindPreset
	kindMaxBytes
	kindCacheBuster
	kindFilename
	kindWatermark
	kindCount
)

var kindNames = [kindCount]string{
	"resize", "crop", "gravity", "quality", "format", "blur", "sharpen",
	"background", "padding", "dpr", "rotate", "auto-rotate",
	"strip-metadata", "strip-color-profile", "trim", "preset", "max-bytes",
	"cache-buster", "filename", "watermark",
}

// Chain is an ordered, append-only sequence of modifier tokens.
//
// The zero-value-equivalent chain from New is empty. Chain methods append one
// token each and return the same chain for fluent use:
//
//	url := urlbuilder.New().
//		Resize(urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFit, Width: 300, Height: 200}).
//		Quality(80).
//		Build(urlbuilder.BuildOptions{Path: "/a.png", BaseURL: "https://cdn.example"})
//
// Each modifier kind is usable once per chain; a second use panics (see the
// package documentation). Build never mutates the chain, so it may be called
// repeatedly, including between further appends.
type Chain struct {
	tokens []string
	used   [kindCount]bool
}

// New creates an empty modifier chain.
func New() *Chain {
	return &Chain{}
}

// Clone returns an independent copy of the chain. Appending to either the
// original or the clone never affects the other.
func (c *Chain) Clone() *Chain {
	dup := &Chain{
		tokens: make([]string, len(c.tokens)),
		used:   c.used,
	}
	copy(dup.tokens, c.tokens)
	return dup
}

// push appends a token for the given kind, enforcing single use per kind.
func (c *Chain) push(kind modifierKind, token string) *Chain {
	if c.used[kind] {
		panic(fmt.Sprintf("urlbuilder: %s modifier already applied to this chain", kindNames[kind]))
	}
	c.used[kind] = true
	c.tokens = append(c.tokens, token)
	return c
}

// SignatureOptions holds the raw-byte signing material for Build. imgproxy
// hands these out hex-encoded; decode them before use.
type SignatureOptions struct {
	Key  []byte
	Salt []byte
}

// BuildOptions configures chain finalization.
type BuildOptions struct {
	// Path is the source image path or URL. When empty, Build returns only
	// the joined modifier tokens and ignores every other field.
	Path string

	// Plain inserts Path verbatim after a literal "plain" component instead
	// of base64url-encoding it.
	Plain bool

	// BaseURL, when non-empty, is prefixed to the result with exactly one
	// "/" joining the two. When empty the result starts with "/".
	BaseURL string

	// Signature, when non-nil, prepends a signature component covering the
	// tokens and file segment.
	Signature *SignatureOptions
}

// Build finalizes the chain into a request path or URL.
//
// With an empty Path the result is the bare token join, with no file segment,
// leading slash, signature, or base URL, suitable for embedding as a fragment
// elsewhere. Otherwise the file segment is appended ("plain" pair or
// encoded component), the signature is prepended when requested, and the base
// URL or a leading "/" is applied last.
//
// Build reads the chain without mutating it and is deterministic for a given
// chain state and options.
func (c *Chain) Build(opts BuildOptions) string {
	if opts.Path == "" {
		return strings.Join(c.tokens, "/")
	}

	segments := make([]string, len(c.tokens), len(c.tokens)+2)
	copy(segments, c.tokens)
	if opts.Plain {
		segments = append(segments, "plain", opts.Path)
	} else {
		segments = append(segments, EncodePath(opts.Path))
	}

	path := strings.Join(segments, "/")
	if opts.Signature != nil {
		path = Sign(path, opts.Signature.Key, opts.Signature.Salt) + "/" + path
	}

	if opts.BaseURL != "" {
		return strings.TrimSuffix(opts.BaseURL, "/") + "/" + path
	}
	return "/" + path
}
