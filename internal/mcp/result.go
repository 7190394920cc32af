// Package mcp provides helpers for turning validation failures into
// MCP tool results.
package mcp

import (
	"fmt"
	"sort"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewToolResultZogIssueMap converts zog schema issues into an error
// tool result that lists every invalid argument.
func NewToolResultZogIssueMap(issues z.ZogIssueMap) *mcp.CallToolResult {
	sanitized := z.Issues.SanitizeMap(issues)

	keys := make([]string, 0, len(sanitized))
	for key := range sanitized {
		// $first aliases the first issue of the map
		if key == "$first" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Invalid arguments:\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", key, strings.Join(sanitized[key], ", "))
	}
	return mcp.NewToolResultError(b.String())
}

// NewToolResultInvalidArgumentError returns an error tool result for
// an argument that passed schema validation but cannot be used.
func NewToolResultInvalidArgumentError(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("invalid argument: %s", message))
}
