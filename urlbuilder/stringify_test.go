package urlbuilder

import "testing"

func TestStringifyArgs(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		args   []interface{}
		want   string
	}{
		{"no args", "ar", nil, "ar"},
		{"single int", "q", []interface{}{80}, "q:80"},
		{"mixed", "rs", []interface{}{"fit", 300, 200}, "rs:fit:300:200"},
		{"bool true", "x", []interface{}{true}, "x:1"},
		{"bool false", "x", []interface{}{false}, "x:0"},
		{"integral float", "dpr", []interface{}{2.0}, "dpr:2"},
		{"fractional float", "blur", []interface{}{1.5}, "blur:1.5"},
		{"trailing nil dropped", "rs", []interface{}{"fit", 300, 200, nil, nil}, "rs:fit:300:200"},
		{"all nils dropped", "g", []interface{}{nil, nil}, "g"},
		{"non-trailing nil renders empty", "rs", []interface{}{"fit", 300, 200, nil, true}, "rs:fit:300:200::1"},
		{"string verbatim", "cb", []interface{}{"v2"}, "cb:v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stringifyArgs(tt.prefix, tt.args...)
			if got != tt.want {
				t.Errorf("stringifyArgs: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatArg_FloatMinimalDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{2.25, "2.25"},
		{300, "300"},
	}

	for _, tt := range tests {
		if got := formatArg(tt.in); got != tt.want {
			t.Errorf("formatArg(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatArg_UnsupportedTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("formatArg should panic for unsupported types")
		}
	}()
	formatArg(struct{}{})
}
