package color

import (
	"errors"
	"strings"
	"testing"
)

func TestParseIndex_ValidRange(t *testing.T) {
	// Every index in [0, 255] round-trips unchanged.
	for i := 0; i <= 255; i++ {
		got, err := ParseIndex(i)
		if err != nil {
			t.Fatalf("ParseIndex(%d) unexpected error: %v", i, err)
		}
		if got != i {
			t.Fatalf("ParseIndex(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestParseIndex_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{"negative", -1, ErrOutOfRange},
		{"too large", 256, ErrOutOfRange},
		{"way too large", 999, ErrOutOfRange},
		{"boolean true", true, ErrInvalidType},
		{"boolean false", false, ErrInvalidType},
		{"string", "red", ErrInvalidType},
		{"float", 1.5, ErrInvalidType},
		{"nil", nil, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseIndex(%v) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseRGB_RepresentationInvariance(t *testing.T) {
	want := RGB{R: 255, G: 136, B: 0}

	tests := []struct {
		name string
		spec any
		rest []any
	}{
		{"hex with hash", "#FF8800", nil},
		{"hex without hash", "FF8800", nil},
		{"hex shorthand", "F80", nil},
		{"hex lowercase", "ff8800", nil},
		{"array", [3]int{255, 136, 0}, nil},
		{"int slice", []int{255, 136, 0}, nil},
		{"any slice", []any{255, 136, 0}, nil},
		{"separate components", 255, []any{136, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGB(tt.spec, tt.rest...)
			if err != nil {
				t.Fatalf("ParseRGB(%v) unexpected error: %v", tt.spec, err)
			}
			if got != want {
				t.Errorf("ParseRGB(%v) = %+v, want %+v", tt.spec, got, want)
			}
		})
	}
}

func TestParseRGB_HexShorthandExpansion(t *testing.T) {
	got, err := ParseRGB("19A")
	if err != nil {
		t.Fatalf("ParseRGB(\"19A\") unexpected error: %v", err)
	}
	want := RGB{R: 17, G: 153, B: 170}
	if got != want {
		t.Errorf("ParseRGB(\"19A\") = %+v, want %+v", got, want)
	}
}

func TestParseRGB_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    any
		rest    []any
		wantErr error
	}{
		{"hex too short", "FF88", nil, ErrMalformedHex},
		{"hex too long", "FF88000", nil, ErrMalformedHex},
		{"hex non-hex digits", "GG8800", nil, ErrMalformedHex},
		{"hex empty", "", nil, ErrMalformedHex},
		{"slice too short", []int{1, 2}, nil, ErrComponentCount},
		{"slice too long", []int{1, 2, 3, 4}, nil, ErrComponentCount},
		{"any slice too short", []any{1, 2}, nil, ErrComponentCount},
		{"missing green and blue", 10, nil, ErrComponentCount},
		{"missing blue", 10, []any{20}, ErrComponentCount},
		{"red out of range", 300, []any{0, 0}, ErrOutOfRange},
		{"green out of range", 0, []any{-1, 0}, ErrOutOfRange},
		{"blue out of range", []int{1, 2, 300}, nil, ErrOutOfRange},
		{"boolean red", true, []any{0, 0}, ErrInvalidType},
		{"boolean green", 0, []any{true, 0}, ErrInvalidType},
		{"boolean in slice", []any{1, false, 3}, nil, ErrInvalidType},
		{"string component", []any{1, "2", 3}, nil, ErrInvalidType},
		{"nil component", []any{1, nil, 3}, nil, ErrInvalidType},
		{"unsupported spec type", 1.5, nil, ErrInvalidType},
		{"map spec", map[string]int{}, nil, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRGB(tt.spec, tt.rest...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseRGB(%v, %v) error = %v, want %v", tt.spec, tt.rest, err, tt.wantErr)
			}
		})
	}
}

func TestParseRGB_ValidationOrder(t *testing.T) {
	// Red is validated before green and blue, so the red failure is the
	// one reported even when later components are also invalid.
	_, err := ParseRGB([]any{true, 999, "x"})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("error = %v, want ErrInvalidType", err)
	}
	if got := err.Error(); !strings.Contains(got, "red") {
		t.Errorf("error %q should name the red component", got)
	}

	_, err = ParseRGB([]any{0, 999, true})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if got := err.Error(); !strings.Contains(got, "green") {
		t.Errorf("error %q should name the green component", got)
	}
}

func TestCodeBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"Foreground256 min", func() (string, error) { return Foreground256(0) }, "\033[38;5;0m"},
		{"Foreground256 max", func() (string, error) { return Foreground256(255) }, "\033[38;5;255m"},
		{"Foreground256 mid", func() (string, error) { return Foreground256(42) }, "\033[38;5;42m"},
		{"Background256 min", func() (string, error) { return Background256(0) }, "\033[48;5;0m"},
		{"Background256 mid", func() (string, error) { return Background256(100) }, "\033[48;5;100m"},
		{"ForegroundRGB tuple", func() (string, error) { return ForegroundRGB([]int{1, 2, 3}) }, "\033[38;2;1;2;3m"},
		{"ForegroundRGB separate", func() (string, error) { return ForegroundRGB(10, 20, 30) }, "\033[38;2;10;20;30m"},
		{"ForegroundRGB hex shorthand", func() (string, error) { return ForegroundRGB("19A") }, "\033[38;2;17;153;170m"},
		{"BackgroundRGB tuple", func() (string, error) { return BackgroundRGB([3]int{11, 22, 33}) }, "\033[48;2;11;22;33m"},
		{"BackgroundRGB separate", func() (string, error) { return BackgroundRGB(100, 150, 200) }, "\033[48;2;100;150;200m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeBuilders_PropagateErrors(t *testing.T) {
	if _, err := Foreground256(256); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Foreground256(256) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Background256("blue"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Background256(\"blue\") error = %v, want ErrInvalidType", err)
	}
	if _, err := ForegroundRGB([]int{1, 2}); !errors.Is(err, ErrComponentCount) {
		t.Errorf("ForegroundRGB short slice error = %v, want ErrComponentCount", err)
	}
	if _, err := BackgroundRGB(128); !errors.Is(err, ErrComponentCount) {
		t.Errorf("BackgroundRGB(128) error = %v, want ErrComponentCount", err)
	}
}
