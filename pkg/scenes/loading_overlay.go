package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/loadscreen/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IndicatorDrawFunc 自定义指示器绘制函数
// elapsed 为指示器挂载以来经过的秒数，用于驱动动画
type IndicatorDrawFunc func(screen *ebiten.Image, elapsed float64)

// LoadingOverlay 加载界面的呈现层，实现 game.Presenter
//
// 挂载后在屏幕上绘制遮罩、旋转菊花指示器与提示文字。
// 支持注入自定义绘制函数；自定义绘制出错时退回内置菊花指示器，
// 呈现层的失败不会传递给控制器。
//
// 同时记录控制器下发的两个性能开关（跳过世界渲染、高优先级流送），
// 供宿主的渲染与流送路径查询。
type LoadingOverlay struct {
	attached bool
	elapsed  float64 // 挂载以来经过的秒数，驱动菊花动画

	worldRenderingSuppressed bool
	highPriorityStreaming    bool

	message    string
	customDraw IndicatorDrawFunc
}

// NewLoadingOverlay 创建加载界面呈现层
func NewLoadingOverlay() *LoadingOverlay {
	return &LoadingOverlay{
		message: "Loading...",
	}
}

// AttachIndicator 实现 game.Presenter：挂载指示器
func (o *LoadingOverlay) AttachIndicator() {
	if o.attached {
		return
	}
	o.attached = true
	o.elapsed = 0
	log.Printf("[Overlay] Indicator attached")
}

// DetachIndicator 实现 game.Presenter：卸载指示器
func (o *LoadingOverlay) DetachIndicator() {
	if !o.attached {
		return
	}
	o.attached = false
	log.Printf("[Overlay] Indicator detached")
}

// SetWorldRenderingSuppressed 实现 game.Presenter
func (o *LoadingOverlay) SetWorldRenderingSuppressed(suppressed bool) {
	o.worldRenderingSuppressed = suppressed
}

// SetHighPriorityStreaming 实现 game.Presenter
func (o *LoadingOverlay) SetHighPriorityStreaming(enabled bool) {
	o.highPriorityStreaming = enabled
}

// IsAttached 指示器当前是否挂载
func (o *LoadingOverlay) IsAttached() bool {
	return o.attached
}

// WorldRenderingSuppressed 宿主渲染路径查询：是否跳过世界渲染
func (o *LoadingOverlay) WorldRenderingSuppressed() bool {
	return o.worldRenderingSuppressed
}

// HighPriorityStreaming 宿主流送路径查询：是否高优先级流送
func (o *LoadingOverlay) HighPriorityStreaming() bool {
	return o.highPriorityStreaming
}

// SetMessage 设置指示器下方的提示文字
func (o *LoadingOverlay) SetMessage(message string) {
	o.message = message
}

// SetCustomDraw 注入自定义指示器绘制函数，nil 表示使用内置菊花
func (o *LoadingOverlay) SetCustomDraw(fn IndicatorDrawFunc) {
	o.customDraw = fn
}

// Update 推进指示器动画
func (o *LoadingOverlay) Update(deltaTime float64) {
	if o.attached {
		o.elapsed += deltaTime
	}
}

// Draw 绘制加载界面，未挂载时不绘制任何内容
// 调用方应在所有世界内容之后调用，保证覆盖在最上层
func (o *LoadingOverlay) Draw(screen *ebiten.Image) {
	if !o.attached {
		return
	}

	// 遮罩背景
	screen.Fill(color.RGBA{R: 16, G: 24, B: 16, A: config.OverlayBackgroundAlpha})

	if o.customDraw != nil && o.drawCustom(screen) {
		return
	}

	o.drawThrobber(screen)

	// 提示文字
	textX := config.GameWindowWidth/2 - len(o.message)*3
	textY := config.GameWindowHeight/2 + int(config.OverlayMessageOffsetY)
	ebitenutil.DebugPrintAt(screen, o.message, textX, textY)
}

// drawCustom 调用自定义绘制函数，返回 false 表示绘制失败需要退回内置指示器
// 自定义绘制 panic 时记录日志并永久退回内置指示器
func (o *LoadingOverlay) drawCustom(screen *ebiten.Image) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Overlay] Custom indicator draw failed: %v (falling back to throbber)", r)
			o.customDraw = nil
			ok = false
		}
	}()

	o.customDraw(screen, o.elapsed)
	return true
}

// drawThrobber 绘制内置的旋转菊花指示器
func (o *LoadingOverlay) drawThrobber(screen *ebiten.Image) {
	centerX := float64(config.GameWindowWidth) / 2
	centerY := float64(config.GameWindowHeight) / 2

	// 旋转相位：每 OverlayThrobberCycleSecs 秒转一周
	phase := math.Mod(o.elapsed/config.OverlayThrobberCycleSecs, 1.0)

	for i := 0; i < config.OverlayThrobberDotCount; i++ {
		t := float64(i) / float64(config.OverlayThrobberDotCount)
		angle := 2 * math.Pi * t

		x := centerX + config.OverlayThrobberRadius*math.Cos(angle)
		y := centerY + config.OverlayThrobberRadius*math.Sin(angle)

		// 相对旋转相位越近的圆点越亮
		brightness := math.Mod(t-phase+1.0, 1.0)
		alpha := uint8(64 + 191*brightness)

		vector.DrawFilledCircle(
			screen,
			float32(x),
			float32(y),
			float32(config.OverlayThrobberDotRadius),
			color.RGBA{R: alpha, G: alpha, B: alpha, A: 255},
			true,
		)
	}
}
