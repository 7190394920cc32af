package tools

import (
	"testing"
)

func TestGotoCellArgumentsSchema(t *testing.T) {
	tests := []struct {
		name      string
		arguments any
		wantValid bool
	}{
		{
			name:      "valid address",
			arguments: map[string]any{"cellAddress": "A1"},
			wantValid: true,
		},
		{
			name:      "multi-letter column",
			arguments: map[string]any{"cellAddress": "AB12"},
			wantValid: true,
		},
		{
			name:      "malformed address",
			arguments: map[string]any{"cellAddress": "1A"},
			wantValid: false,
		},
		{
			name:      "range instead of cell",
			arguments: map[string]any{"cellAddress": "A1:C3"},
			wantValid: false,
		},
		{
			name:      "missing address",
			arguments: map[string]any{},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := SofficeGotoCellArguments{}
			issues := sofficeGotoCellArgumentsSchema.Parse(tt.arguments, &args)
			if tt.wantValid {
				if len(issues) != 0 {
					t.Errorf("Parse(%v) unexpected issues: %v", tt.arguments, issues)
				}
				return
			}
			if len(issues) == 0 {
				t.Errorf("Parse(%v) expected issues, got none", tt.arguments)
			}
		})
	}
}
