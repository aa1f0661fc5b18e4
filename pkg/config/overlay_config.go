package config

// Loading Overlay 配置常量

const (
	// GameWindowWidth 游戏窗口逻辑宽度
	GameWindowWidth int = 800

	// GameWindowHeight 游戏窗口逻辑高度
	GameWindowHeight int = 600

	// OverlayThrobberRadius 指示器菊花半径（像素）
	OverlayThrobberRadius float64 = 28

	// OverlayThrobberDotRadius 指示器菊花单个圆点半径（像素）
	OverlayThrobberDotRadius float64 = 6

	// OverlayThrobberDotCount 指示器菊花圆点数量
	OverlayThrobberDotCount int = 8

	// OverlayThrobberCycleSecs 菊花旋转一周的时长（秒）
	OverlayThrobberCycleSecs float64 = 1.2

	// OverlayMessageOffsetY 提示文字相对屏幕中心的 Y 偏移
	OverlayMessageOffsetY float64 = 64

	// OverlayBackgroundAlpha 遮罩背景不透明度 0 ~ 255
	OverlayBackgroundAlpha uint8 = 230
)
