package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 复活流程与摄像机等只读进度的表现层通过这些函数取值。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// Progress 计算倒计时的进度 ∈ [0,1]
// remaining 为剩余帧数，total 为总帧数；total 非正时视为已完成
func Progress(remaining, total int) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(1-float64(remaining)/float64(total), 0, 1)
}
