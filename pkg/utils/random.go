package utils

import "math/rand/v2"

// RandomSource 模拟使用的随机数来源
// *rand.Rand 天然满足该接口；测试中可替换为脚本化实现以获得确定性结果
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 区间的伪随机数
	Float64() float64
}

// NewSeededRandom 创建指定种子的随机数来源
// 相同种子产生相同序列，用于可复现的模拟与测试
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chance 以概率 p 返回 true
func Chance(rng RandomSource, p float64) bool {
	return rng.Float64() < p
}

// RandomRange 返回 [lo, hi) 区间的随机数
// hi <= lo 时返回 lo
func RandomRange(rng RandomSource, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
