package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"url_build",
		"url_encode_path",
		"url_sign_path",
		"gravity_suggest",
		"transform_preview",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		tool, ok := toolMap[name]
		if !ok {
			t.Errorf("missing tool: %s", name)
			continue
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %s schema type: got %v, want object", name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("tool %s schema has no properties", name)
		}
	}
}

func TestGetToolDefinitions_MarshalsToJSON(t *testing.T) {
	// The definitions go over the wire verbatim; they must marshal cleanly.
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("failed to marshal tool definitions: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("marshaled definitions are empty")
	}
}

func TestURLBuildSchema_CoversModifiers(t *testing.T) {
	var buildTool *Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "url_build" {
			found := tool
			buildTool = &found
			break
		}
	}
	if buildTool == nil {
		t.Fatal("url_build tool not found")
	}

	props, ok := buildTool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected properties type %T", buildTool.InputSchema["properties"])
	}

	required := []string{
		"path", "plain", "signed", "base_url",
		"resize", "crop", "gravity", "quality", "format", "blur", "sharpen",
		"background", "padding", "dpr", "rotate", "auto_rotate",
		"strip_metadata", "strip_color_profile", "trim", "presets",
		"max_bytes", "cache_buster", "filename", "watermark",
	}
	for _, name := range required {
		if _, ok := props[name]; !ok {
			t.Errorf("url_build schema missing property %q", name)
		}
	}
}
