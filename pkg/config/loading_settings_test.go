package config

import "testing"

// TestDefaultLoadingScreenSettings 测试默认设置值
func TestDefaultLoadingScreenSettings(t *testing.T) {
	settings := DefaultLoadingScreenSettings()

	if settings == nil {
		t.Fatal("DefaultLoadingScreenSettings() returned nil")
	}

	if settings.HoldAdditionalSecs != 2.0 {
		t.Errorf("HoldAdditionalSecs: got %v, want 2.0", settings.HoldAdditionalSecs)
	}

	if settings.ZOrder != 10000 {
		t.Errorf("ZOrder: got %v, want 10000", settings.ZOrder)
	}

	if settings.ForceDisplay {
		t.Error("ForceDisplay: got true, want false")
	}

	if settings.LogReasons {
		t.Error("LogReasons: got true, want false")
	}

	if settings.ShowHoldTimeInEditor {
		t.Error("ShowHoldTimeInEditor: got true, want false")
	}
}

// TestNormalize 测试设置范围约束
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"Positive kept", 3.5, 3.5},
		{"Zero kept", 0.0, 0.0},
		{"Negative clamped", -1.0, 0.0},
		{"Large negative clamped", -100.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &LoadingScreenSettings{HoldAdditionalSecs: tt.input}
			s.Normalize()
			if s.HoldAdditionalSecs != tt.want {
				t.Errorf("Normalize(): HoldAdditionalSecs got %v, want %v", s.HoldAdditionalSecs, tt.want)
			}
		})
	}
}
