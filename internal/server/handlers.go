package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/imgproxy-url-mcp/focus"
	"github.com/ironsheep/imgproxy-url-mcp/preview"
	"github.com/ironsheep/imgproxy-url-mcp/urlbuilder"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "url_build", "gravity_suggest").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "url_build":
		return s.handleURLBuild(args)
	case "url_encode_path":
		return s.handleURLEncodePath(args)
	case "url_sign_path":
		return s.handleURLSignPath(args)
	case "gravity_suggest":
		return s.handleGravitySuggest(args)
	case "transform_preview":
		return s.handleTransformPreview(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Modifier argument structures ===

type resizeArgs struct {
	Type    string `json:"type"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Enlarge bool   `json:"enlarge"`
	Extend  bool   `json:"extend"`
}

type gravityArgs struct {
	Type    string   `json:"type"`
	OffsetX *float64 `json:"offset_x"`
	OffsetY *float64 `json:"offset_y"`
}

type cropArgs struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Gravity *gravityArgs `json:"gravity"`
}

type trimArgs struct {
	Threshold float64 `json:"threshold"`
	Color     string  `json:"color"`
	EqualHor  bool    `json:"equal_hor"`
	EqualVer  bool    `json:"equal_ver"`
}

type watermarkArgs struct {
	Opacity  float64  `json:"opacity"`
	Position string   `json:"position"`
	OffsetX  *float64 `json:"offset_x"`
	OffsetY  *float64 `json:"offset_y"`
	Scale    float64  `json:"scale"`
}

// modifierArgs is the shared modifier set accepted by url_build and
// transform_preview. Pointer fields distinguish "not supplied" from zero.
type modifierArgs struct {
	Resize            *resizeArgs    `json:"resize"`
	Crop              *cropArgs      `json:"crop"`
	Gravity           *gravityArgs   `json:"gravity"`
	Quality           *int           `json:"quality"`
	Format            string         `json:"format"`
	Blur              float64        `json:"blur"`
	Sharpen           float64        `json:"sharpen"`
	Background        string         `json:"background"`
	Padding           []int          `json:"padding"`
	DPR               float64        `json:"dpr"`
	Rotate            int            `json:"rotate"`
	AutoRotate        bool           `json:"auto_rotate"`
	StripMetadata     bool           `json:"strip_metadata"`
	StripColorProfile bool           `json:"strip_color_profile"`
	Trim              *trimArgs      `json:"trim"`
	Presets           []string       `json:"presets"`
	MaxBytes          int            `json:"max_bytes"`
	CacheBuster       string         `json:"cache_buster"`
	Filename          string         `json:"filename"`
	Watermark         *watermarkArgs `json:"watermark"`
}

// capturePanic runs fn, converting chain-misuse panics (invalid quality,
// malformed hex color, ...) into tool errors instead of crashing the server.
func capturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

// gravityOptions converts wire gravity arguments to builder options.
func gravityOptions(a *gravityArgs) urlbuilder.GravityOptions {
	opts := urlbuilder.GravityOptions{Type: urlbuilder.GravityType(a.Type)}
	if a.OffsetX != nil || a.OffsetY != nil {
		offset := &urlbuilder.Offset{}
		if a.OffsetX != nil {
			offset.X = *a.OffsetX
		}
		if a.OffsetY != nil {
			offset.Y = *a.OffsetY
		}
		opts.Offset = offset
	}
	return opts
}

// buildChain assembles a modifier chain from wire arguments in the canonical
// order documented on the url_build tool.
func buildChain(m modifierArgs) (*urlbuilder.Chain, error) {
	chain := urlbuilder.New()
	err := capturePanic(func() {
		if len(m.Presets) > 0 {
			chain.Preset(m.Presets...)
		}
		if m.Trim != nil {
			opts := urlbuilder.TrimOptions{
				Threshold: m.Trim.Threshold,
				EqualHor:  m.Trim.EqualHor,
				EqualVer:  m.Trim.EqualVer,
			}
			if m.Trim.Color != "" {
				opts.Color = urlbuilder.HexColor(m.Trim.Color)
			}
			chain.Trim(opts)
		}
		if m.Crop != nil {
			opts := urlbuilder.CropOptions{Width: m.Crop.Width, Height: m.Crop.Height}
			if m.Crop.Gravity != nil {
				gravity := gravityOptions(m.Crop.Gravity)
				opts.Gravity = &gravity
			}
			chain.Crop(opts)
		}
		if m.Gravity != nil {
			chain.Gravity(gravityOptions(m.Gravity))
		}
		if m.Resize != nil {
			chain.Resize(urlbuilder.ResizeOptions{
				Type:    urlbuilder.ResizeType(m.Resize.Type),
				Width:   m.Resize.Width,
				Height:  m.Resize.Height,
				Enlarge: m.Resize.Enlarge,
				Extend:  m.Resize.Extend,
			})
		}
		if len(m.Padding) > 0 {
			chain.Padding(m.Padding...)
		}
		if m.DPR != 0 {
			chain.DPR(m.DPR)
		}
		if m.Rotate != 0 {
			chain.Rotate(urlbuilder.Rotation(m.Rotate))
		}
		if m.AutoRotate {
			chain.AutoRotate()
		}
		if m.Background != "" {
			chain.Background(urlbuilder.HexColor(m.Background))
		}
		if m.Blur != 0 {
			chain.Blur(m.Blur)
		}
		if m.Sharpen != 0 {
			chain.Sharpen(m.Sharpen)
		}
		if m.Quality != nil {
			chain.Quality(*m.Quality)
		}
		if m.Format != "" {
			chain.Format(m.Format)
		}
		if m.MaxBytes != 0 {
			chain.MaxBytes(m.MaxBytes)
		}
		if m.StripMetadata {
			chain.StripMetadata()
		}
		if m.StripColorProfile {
			chain.StripColorProfile()
		}
		if m.Watermark != nil {
			opts := urlbuilder.WatermarkOptions{
				Opacity:  m.Watermark.Opacity,
				Position: urlbuilder.WatermarkPosition(m.Watermark.Position),
				Scale:    m.Watermark.Scale,
			}
			if m.Watermark.OffsetX != nil || m.Watermark.OffsetY != nil {
				offset := &urlbuilder.Offset{}
				if m.Watermark.OffsetX != nil {
					offset.X = *m.Watermark.OffsetX
				}
				if m.Watermark.OffsetY != nil {
					offset.Y = *m.Watermark.OffsetY
				}
				opts.Offset = offset
			}
			chain.Watermark(opts)
		}
		if m.CacheBuster != "" {
			chain.CacheBuster(m.CacheBuster)
		}
		if m.Filename != "" {
			chain.Filename(m.Filename)
		}
	})
	if err != nil {
		return nil, err
	}
	return chain, nil
}

// previewRenderOptions extracts the visual modifier subset for local
// rendering. Non-visual modifiers (quality, format, presets, ...) only affect
// the URL.
func previewRenderOptions(m modifierArgs) (preview.Options, error) {
	opts := preview.Options{
		Padding: m.Padding,
		Blur:    m.Blur,
		Sharpen: m.Sharpen,
		DPR:     m.DPR,
		Rotate:  urlbuilder.Rotation(m.Rotate),
	}
	if m.Resize != nil {
		opts.Resize = &urlbuilder.ResizeOptions{
			Type:   urlbuilder.ResizeType(m.Resize.Type),
			Width:  m.Resize.Width,
			Height: m.Resize.Height,
		}
	}
	if m.Crop != nil {
		crop := urlbuilder.CropOptions{Width: m.Crop.Width, Height: m.Crop.Height}
		if m.Crop.Gravity != nil {
			gravity := gravityOptions(m.Crop.Gravity)
			crop.Gravity = &gravity
		}
		opts.Crop = &crop
	}
	if m.Background != "" {
		var bg urlbuilder.Color
		if err := capturePanic(func() { bg = urlbuilder.HexColor(m.Background) }); err != nil {
			return preview.Options{}, err
		}
		opts.Background = &bg
	}
	return opts, nil
}

// === URL Building Handlers ===

type urlBuildArgs struct {
	modifierArgs
	Path    string  `json:"path"`
	Plain   bool    `json:"plain"`
	Signed  bool    `json:"signed"`
	BaseURL *string `json:"base_url"`
}

type urlBuildResult struct {
	// URL is the assembled request URL, or the bare modifier fragment when
	// no path was supplied.
	URL string `json:"url"`

	// Signed reports whether a signature component was included.
	Signed bool `json:"signed"`
}

func (s *Server) handleURLBuild(args json.RawMessage) (interface{}, error) {
	var a urlBuildArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	chain, err := buildChain(a.modifierArgs)
	if err != nil {
		return nil, err
	}

	opts := urlbuilder.BuildOptions{
		Path:    a.Path,
		Plain:   a.Plain,
		BaseURL: s.baseURL,
	}
	if a.BaseURL != nil {
		opts.BaseURL = *a.BaseURL
	}
	if a.Signed {
		if len(s.key) == 0 || len(s.salt) == 0 {
			return nil, fmt.Errorf("signing requested but no key/salt configured (set IMGPROXY_KEY and IMGPROXY_SALT)")
		}
		opts.Signature = &urlbuilder.SignatureOptions{Key: s.key, Salt: s.salt}
	}

	return urlBuildResult{
		URL:    chain.Build(opts),
		Signed: a.Signed && a.Path != "",
	}, nil
}

type pathArgs struct {
	Path string `json:"path"`
}

type encodePathResult struct {
	Encoded string `json:"encoded"`
}

func (s *Server) handleURLEncodePath(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return encodePathResult{Encoded: urlbuilder.EncodePath(a.Path)}, nil
}

type signPathResult struct {
	Signature  string `json:"signature"`
	SignedPath string `json:"signed_path"`
}

func (s *Server) handleURLSignPath(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if len(s.key) == 0 || len(s.salt) == 0 {
		return nil, fmt.Errorf("no key/salt configured (set IMGPROXY_KEY and IMGPROXY_SALT)")
	}

	signature := urlbuilder.Sign(a.Path, s.key, s.salt)
	return signPathResult{
		Signature:  signature,
		SignedPath: "/" + signature + "/" + a.Path,
	}, nil
}

// === Image Analysis Handlers ===

func (s *Server) handleGravitySuggest(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return focus.SuggestGravity(img)
}

type transformPreviewArgs struct {
	modifierArgs
	Path string `json:"path"`
}

type transformPreviewResult struct {
	preview.RenderResult

	// Tokens is the modifier fragment matching the rendered preview.
	Tokens string `json:"tokens"`
}

func (s *Server) handleTransformPreview(args json.RawMessage) (interface{}, error) {
	var a transformPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts, err := previewRenderOptions(a.modifierArgs)
	if err != nil {
		return nil, err
	}
	rendered, err := preview.Render(img, opts)
	if err != nil {
		return nil, err
	}
	result, err := preview.EncodePNG(rendered)
	if err != nil {
		return nil, err
	}

	chain, err := buildChain(a.modifierArgs)
	if err != nil {
		return nil, err
	}

	return transformPreviewResult{
		RenderResult: *result,
		Tokens:       chain.Build(urlbuilder.BuildOptions{}),
	}, nil
}
