package components

// Particle 表现用粒子（对象池复用）
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Kind    string
}

// FloatingText 伤害飘字（对象池复用）
type FloatingText struct {
	X, Y float64
	VY   float64
	Text string
	Life int
	Crit bool
}
