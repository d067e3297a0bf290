package tools

import (
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-tracker/pkg/backend"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// jsonResult returns a summary line followed by v as indented JSON
func jsonResult(summary string, v any) (*sdkmcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}
	return textResult(summary + "\n" + string(b)), nil, nil
}

// errorResult reports a failure to the model rather than the transport
func errorResult(err error) (*sdkmcp.CallToolResult, any, error) {
	res := textResult(backend.Message(err))
	res.IsError = true
	return res, nil, nil
}
