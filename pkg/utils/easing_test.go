package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestProgress 测试倒计时进度
func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		total     int
		expected  float64
	}{
		{"刚开始", 60, 60, 0},
		{"一半", 30, 60, 0.5},
		{"结束", 0, 60, 1},
		{"总帧数为零", 0, 0, 1},
		{"剩余超过总数", 90, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.remaining, tt.total); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Progress(%d,%d) = %v, 期望 %v", tt.remaining, tt.total, got, tt.expected)
			}
		})
	}
}
