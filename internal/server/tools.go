package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// gravitySchema describes a gravity argument: an anchor type plus optional
// pixel offsets.
func gravitySchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"ce", "no", "so", "ea", "we", "noea", "nowe", "soea", "sowe", "sm"},
				"description": "Anchor region (compass shorthand, ce = center, sm = smart)",
			},
			"offset_x": map[string]interface{}{
				"type":        "number",
				"description": "Horizontal shift from the anchor in pixels",
			},
			"offset_y": map[string]interface{}{
				"type":        "number",
				"description": "Vertical shift from the anchor in pixels",
			},
		},
		"required":    []string{"type"},
		"description": description,
	}
}

// modifierProperties describes the shared modifier arguments accepted by
// url_build and transform_preview. Modifiers are applied in a fixed canonical
// order (presets, trim, crop, gravity, resize, padding, dpr, rotate,
// auto-rotate, background, blur, sharpen, quality, format, max-bytes, strip
// flags, watermark, cache-buster, filename); callers that need a custom token
// order use the urlbuilder library directly.
func modifierProperties() map[string]interface{} {
	return map[string]interface{}{
		"resize": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"fit", "fill", "fill-down", "force", "auto"},
					"description": "Scaling strategy",
				},
				"width":   map[string]interface{}{"type": "integer", "description": "Target width in pixels (0 = unconstrained)"},
				"height":  map[string]interface{}{"type": "integer", "description": "Target height in pixels (0 = unconstrained)"},
				"enlarge": map[string]interface{}{"type": "boolean", "description": "Permit upscaling past the source size"},
				"extend":  map[string]interface{}{"type": "boolean", "description": "Pad the result to the full requested size"},
			},
			"description": "Resize the image (rs token)",
		},
		"crop": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"width":   map[string]interface{}{"type": "number", "description": "Crop width: >=1 pixels, 0-1 fraction, 0 full width"},
				"height":  map[string]interface{}{"type": "number", "description": "Crop height: >=1 pixels, 0-1 fraction, 0 full height"},
				"gravity": gravitySchema("Optional crop anchor"),
			},
			"description": "Crop a region (c token)",
		},
		"gravity": gravitySchema("Default anchor for server-side operations (g token)"),
		"quality": map[string]interface{}{
			"type":        "integer",
			"description": "Output quality percentage, 0-100 (q token)",
		},
		"format": map[string]interface{}{
			"type":        "string",
			"description": "Output format extension, e.g. png, webp, avif (f token)",
		},
		"blur": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian blur sigma (blur token)",
		},
		"sharpen": map[string]interface{}{
			"type":        "number",
			"description": "Sharpen sigma (sh token)",
		},
		"background": map[string]interface{}{
			"type":        "string",
			"description": "Background color as hex, e.g. #aabbcc, filling transparency (bg token)",
		},
		"padding": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "integer"},
			"description": "1-4 padding values in pixels, CSS shorthand order (pd token)",
		},
		"dpr": map[string]interface{}{
			"type":        "number",
			"description": "Device pixel ratio multiplier (dpr token)",
		},
		"rotate": map[string]interface{}{
			"type":        "integer",
			"enum":        []int{90, 180, 270},
			"description": "Clockwise rotation angle (rot token)",
		},
		"auto_rotate": map[string]interface{}{
			"type":        "boolean",
			"description": "Rotate according to EXIF orientation (ar token)",
		},
		"strip_metadata": map[string]interface{}{
			"type":        "boolean",
			"description": "Remove EXIF and similar metadata (sm token)",
		},
		"strip_color_profile": map[string]interface{}{
			"type":        "boolean",
			"description": "Remove the embedded color profile (scp token)",
		},
		"trim": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"threshold": map[string]interface{}{"type": "number", "description": "Color similarity tolerance"},
				"color":     map[string]interface{}{"type": "string", "description": "Border color as hex; omit for auto-detection"},
				"equal_hor": map[string]interface{}{"type": "boolean", "description": "Trim equal amounts left and right"},
				"equal_ver": map[string]interface{}{"type": "boolean", "description": "Trim equal amounts top and bottom"},
			},
			"description": "Trim near-solid borders (t token)",
		},
		"presets": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Server-side preset names to apply (pr token)",
		},
		"max_bytes": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum result size in bytes (mb token)",
		},
		"cache_buster": map[string]interface{}{
			"type":        "string",
			"description": "Opaque value that defeats intermediate caches (cb token)",
		},
		"filename": map[string]interface{}{
			"type":        "string",
			"description": "Filename for the Content-Disposition header (fn token)",
		},
		"watermark": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"opacity":  map[string]interface{}{"type": "number", "description": "Watermark opacity, 0-1"},
				"position": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"ce", "no", "so", "ea", "we", "noea", "nowe", "soea", "sowe", "re"},
					"description": "Placement (re = replicate/tile)",
				},
				"offset_x": map[string]interface{}{"type": "number", "description": "Horizontal shift in pixels"},
				"offset_y": map[string]interface{}{"type": "number", "description": "Vertical shift in pixels"},
				"scale":    map[string]interface{}{"type": "number", "description": "Watermark size relative to the image (0 = own size)"},
			},
			"required":    []string{"opacity"},
			"description": "Overlay the configured watermark (wm token)",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	buildProperties := modifierProperties()
	buildProperties["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Source image path or URL. Omit to get only the modifier fragment.",
	}
	buildProperties["plain"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Insert the source path verbatim (plain mode) instead of base64url-encoding it",
	}
	buildProperties["signed"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Prepend a signature computed with the configured key and salt",
	}
	buildProperties["base_url"] = map[string]interface{}{
		"type":        "string",
		"description": "Override the configured imgproxy base URL for this build",
	}

	previewProperties := modifierProperties()
	previewProperties["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a local image file",
	}

	return []Tool{
		{
			Name:        "url_build",
			Description: "Assemble an imgproxy processing URL from modifier settings and a source image path. Returns the complete URL (or the bare modifier fragment when no path is given).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": buildProperties,
			},
		},
		{
			Name:        "url_encode_path",
			Description: "Base64url-encode a source path or URL the way imgproxy expects it in the final path component.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Raw source path or URL to encode",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "url_sign_path",
			Description: "Sign an already-assembled core path (tokens plus file segment, no leading slash) with the configured key and salt.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Core path to sign, e.g. rs:fit:300:200/L2EucG5n",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "gravity_suggest",
			Description: "Analyze a local image and suggest a crop gravity based on where its visual detail lives. Returns the gravity type, pixel offsets, a confidence value, and the ready-made g token.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a local image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "transform_preview",
			Description: "Apply the visual modifiers (crop, resize, rotate, padding, background, blur, sharpen, dpr) to a local image and return a base64 PNG approximation of what imgproxy will produce, together with the matching modifier fragment.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": previewProperties,
				"required":   []string{"path"},
			},
		},
	}
}
