//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
)

// GenerateRequest represents a heightmap request from JS
type GenerateRequest struct {
	Size int   `json:"size"`
	Seed int64 `json:"seed"`
}

// generateHeightmap is called from JavaScript with a JSON-encoded GenerateRequest.
// It returns {side, values} where values is the row-major grid, or {error}.
func generateHeightmap(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	var req GenerateRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return map[string]interface{}{"error": fmt.Sprintf("failed to parse request: %v", err)}
	}

	grid, err := heightmap.GenerateSeeded(req.Size, req.Seed)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	raw := grid.Values()
	values := make([]interface{}, len(raw))
	for i, v := range raw {
		values[i] = float64(v)
	}

	return map[string]interface{}{
		"side":   grid.Side(),
		"values": values,
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("heightmapGenerate", js.FuncOf(generateHeightmap))

	fmt.Println("Heightmap WASM module loaded")
	<-c
}
