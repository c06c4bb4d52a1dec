package utils

import "math"

// MinDistance 归一化/力计算时的最小距离下限，防止除零
const MinDistance = 0.0001

// DistSq 两点距离的平方
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Dist 两点距离
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}

// Direction 返回 (x1,y1) 指向 (x2,y2) 的单位向量和距离
// 距离低于 MinDistance 时按 MinDistance 处理，方向退化为 (0,0)
func Direction(x1, y1, x2, y2 float64) (nx, ny, dist float64) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist < MinDistance {
		return 0, 0, MinDistance
	}
	return dx / dist, dy / dist, dist
}

// CirclesOverlap 圆形碰撞检测
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	r := r1 + r2
	return DistSq(x1, y1, x2, y2) < r*r
}

// SafeRatio 计算 num/den，分母小于等于0时返回0
func SafeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Clamp 将值限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Rotate 将向量旋转 angle 弧度
func Rotate(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return x*c - y*s, x*s + y*c
}

// LimitSpeed 将速度向量长度限制在 max 以内
func LimitSpeed(vx, vy, max float64) (float64, float64) {
	sq := vx*vx + vy*vy
	if sq <= max*max || sq == 0 {
		return vx, vy
	}
	f := max / math.Sqrt(sq)
	return vx * f, vy * f
}
