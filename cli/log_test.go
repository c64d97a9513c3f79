package cli

import "testing"

func TestSplitFlag(t *testing.T) {
	tests := []struct {
		arg      string
		name     string
		value    string
		assigned bool
	}{
		{"--log-level=debug", "--log-level", "debug", true},
		{"--log-pretty", "--log-pretty", "", false},
		{"--log-format=", "--log-format", "", true},
		{"run", "", "", false},
		{"-n", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value, assigned := splitFlag(tt.arg)

			if name != tt.name || value != tt.value || assigned != tt.assigned {
				t.Errorf("splitFlag(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.arg, name, value, assigned,
					tt.name, tt.value, tt.assigned)
			}
		})
	}
}

func TestLogConfigScan(t *testing.T) {
	t.Cleanup(func() {
		var reset logConfig
		reset.scan([]string{"--log-level", "info", "--log-format", "json"})
	})

	tests := []struct {
		name   string
		args   []string
		check  func(f logConfig) bool
		detail string
	}{
		{
			name:   "level consumes next argument",
			args:   []string{"--log-level", "debug"},
			check:  func(f logConfig) bool { return f.Level == "debug" },
			detail: "Level",
		},
		{
			name:   "format assigned with equals",
			args:   []string{"--log-format=text"},
			check:  func(f logConfig) bool { return f.Format == "text" },
			detail: "Format",
		},
		{
			name:   "bare boolean enables",
			args:   []string{"--log-caller"},
			check:  func(f logConfig) bool { return f.Caller },
			detail: "Caller",
		},
		{
			name:   "negated boolean disables",
			args:   []string{"--log-caller", "--no-log-caller"},
			check:  func(f logConfig) bool { return !f.Caller },
			detail: "Caller",
		},
		{
			name:   "boolean assigned with equals",
			args:   []string{"--log-pretty=false"},
			check:  func(f logConfig) bool { return !f.Pretty },
			detail: "Pretty",
		},
		{
			name: "unparsable boolean value ignored",
			args: []string{"--log-pretty", "--log-pretty=maybe"},
			check: func(f logConfig) bool {
				return f.Pretty
			},
			detail: "Pretty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f logConfig
			f.scan(tt.args)

			if !tt.check(f) {
				t.Errorf("scan(%v) left unexpected %s: %+v",
					tt.args, tt.detail, f)
			}
		})
	}
}
