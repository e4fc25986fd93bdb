package config

import "testing"

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{name: "empty", cfg: LLMConfig{}, wantErr: true},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openrouter", Enabled: true, Priority: 1},
				{Name: "deepseek", Enabled: true, Priority: 2},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openrouter", Enabled: true, Priority: 1},
				{Name: "deepseek", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name:    "none enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Priority: 1}}},
			wantErr: true,
		},
		{
			name:    "missing name",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetStringMapFromMap(t *testing.T) {
	m := map[string]interface{}{
		"headers": map[string]interface{}{"X-Title": "Task Manager Bot", "n": 1},
	}
	got := getStringMapFromMap(m, "headers")
	if len(got) != 1 || got["X-Title"] != "Task Manager Bot" {
		t.Errorf("unexpected headers: %v", got)
	}
	if getStringMapFromMap(m, "missing") != nil {
		t.Error("expected nil for missing key")
	}
}
