package errors

import "testing"

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "target.pdf", false},
		{"nested", "out/targets/target.svg", false},
		{"absolute", "/tmp/target.png", false},
		{"no extension", "target", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 2000)), true},
		{"null byte", "tar\x00get.pdf", true},
		{"newline", "target\n.pdf", true},
		{"directory", "out/", true},
		{"dot", ".", true},
		{"dot dot", "out/..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"toml", "target.toml", false},
		{"yaml", "conf/target.yaml", false},
		{"yml upper", "TARGET.YML", false},

		{"empty", "", true},
		{"json", "target.json", true},
		{"no extension", "target", true},
		{"control char", "tar\x01get.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidConfiguration,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeRenderingFailure,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
