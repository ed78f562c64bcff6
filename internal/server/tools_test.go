package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"anomaly_detect",
		"anomaly_highlight",
		"anomaly_point_difference",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_AnomalyDetectHueEnum(t *testing.T) {
	var detect Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "anomaly_detect" {
			detect = tool
		}
	}

	props := detect.InputSchema["properties"].(map[string]interface{})
	hue, ok := props["hue"].(map[string]interface{})
	if !ok {
		t.Fatal("anomaly_detect should have a hue property")
	}
	enum, ok := hue["enum"].([]string)
	if !ok {
		t.Fatal("hue enum should be a string slice")
	}

	want := map[string]bool{"yellow": true, "red": true, "green": true, "blue": true}
	if len(enum) != len(want) {
		t.Errorf("enum: got %v", enum)
	}
	for _, h := range enum {
		if !want[h] {
			t.Errorf("unexpected hue %s", h)
		}
	}
	for _, p := range []string{"width", "height", "include_overlay"} {
		if _, ok := props[p]; !ok {
			t.Errorf("missing optional property %s", p)
		}
	}
}
