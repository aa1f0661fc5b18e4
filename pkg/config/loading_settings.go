package config

// LoadingScreenSettings 加载界面全局设置
// 注意：这些设置是全局的，不绑定到特定存档，控制器在每次判定前重新读取
type LoadingScreenSettings struct {
	// 行为设置
	HoldAdditionalSecs float64 `yaml:"holdAdditionalSecs"` // 加载完成后继续显示的秒数（遮盖贴图/几何体流送）
	ZOrder             int     `yaml:"zOrder"`             // 指示器绘制层级，故意很高以覆盖其他内容

	// 调试设置
	ForceDisplay         bool `yaml:"forceDisplay"`         // 强制始终显示加载界面
	LogReasons           bool `yaml:"logReasons"`           // 每次判定输出显示状态与原因日志
	ShowHoldTimeInEditor bool `yaml:"showHoldTimeInEditor"` // 编辑器环境下是否仍然等待附加时间
}

// DefaultLoadingScreenSettings 返回默认设置
func DefaultLoadingScreenSettings() *LoadingScreenSettings {
	return &LoadingScreenSettings{
		HoldAdditionalSecs:   2.0,
		ZOrder:               10000,
		ForceDisplay:         false,
		LogReasons:           false,
		ShowHoldTimeInEditor: false,
	}
}

// Normalize 将设置约束到合法范围
//
// HoldAdditionalSecs 不允许为负（负值按 0 处理），ZOrder 不做限制
func (s *LoadingScreenSettings) Normalize() {
	if s.HoldAdditionalSecs < 0 {
		s.HoldAdditionalSecs = 0
	}
}
