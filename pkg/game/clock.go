package game

import "time"

// Clock 为控制器提供单调递增的墙钟时间（秒）
// 附加显示时长按墙钟计算，与帧率无关
type Clock interface {
	// Now 返回当前时间（秒），单调递增，不保证从零开始
	Now() float64
}

// SystemClock 基于 time 包单调时钟的 Clock 实现
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建系统时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自时钟创建以来经过的秒数
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
