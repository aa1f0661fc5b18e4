// Package app 提供演示宿主的核心包装器
//
// 该包把加载界面控制器接入一个最小的 ebiten 游戏循环：
// 模拟关卡加载的世界生命周期驱动控制器判定，呈现层绘制加载指示器。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/loadscreen/pkg/config"
	"github.com/decker502/loadscreen/pkg/game"
	"github.com/decker502/loadscreen/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 演示关卡加载耗时（秒）
const (
	demoLoadSecs      = 2.5
	demoBeginPlaySecs = 0.5
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SettingsFile 可热编辑的设置文件路径（YAML），为空则仅使用持久化设置
	SettingsFile string
	// EditorMode 将会话标记为编辑器预览环境
	EditorMode bool
}

// App 是演示宿主的核心包装器，实现 ebiten.Game 接口
type App struct {
	settingsManager *config.SettingsManager
	settingsWatcher *config.SettingsWatcher
	session         *game.WorldSession
	controller      *game.LoadingScreenController
	overlay         *scenes.LoadingOverlay

	verbose    bool
	levelIndex int
	forced     bool // 演示用：游戏逻辑强制显示开关的当前状态
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化 gdata 存储，失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "loadscreen"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := config.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	a := &App{
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}

	// 可选的热编辑设置文件：先加载一次，再监视后续修改
	if cfg.SettingsFile != "" {
		if err := settingsManager.LoadFile(cfg.SettingsFile); err != nil {
			log.Printf("[App] Warning: %v (using stored settings)", err)
		}
		watcher, err := config.NewSettingsWatcher(cfg.SettingsFile)
		if err != nil {
			log.Printf("[App] Warning: cannot watch settings file: %v", err)
		} else {
			a.settingsWatcher = watcher
		}
	}

	a.session = game.NewWorldSession(cfg.EditorMode)
	a.overlay = scenes.NewLoadingOverlay()
	a.controller = game.NewLoadingScreenController(game.NewSystemClock(), a.session, settingsManager, a.overlay)

	// 演示监听器：把两类通知打到日志
	a.controller.AddHoldTimeStartedListener(func(holdSecs float64) {
		log.Printf("[App] Hold time started: %.2fs", holdSecs)
	})
	a.controller.AddVisibilityChangedListener(func(displayed bool) {
		log.Printf("[App] Loading screen visibility changed: %v", displayed)
	})

	a.startNextLevelLoad()

	return a, nil
}

// startNextLevelLoad 开始加载下一个演示关卡
// 先让控制器立即判定一次（加载界面在阻塞加载开始前出现），再启动会话加载
func (a *App) startNextLevelLoad() {
	a.levelIndex++
	level := fmt.Sprintf("demo-level-%d", a.levelIndex)

	a.controller.OnBeforeLevelLoad()
	a.session.StartLevelLoad(level, demoLoadSecs, demoBeginPlaySecs)
	a.overlay.SetMessage(fmt.Sprintf("Loading %s...", level))
}

// Update 更新演示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.drainSettingsEvents()

	// R 重新加载关卡，F 切换游戏逻辑强制显示
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.startNextLevelLoad()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.forced = !a.forced
		a.controller.ForceDisplayStateByGameLogic(a.forced, "forced from demo key binding")
		log.Printf("[App] Game logic forced visibility: %v", a.forced)
	}

	deltaTime := 1.0 / 60.0

	if a.session.Advance(deltaTime) {
		a.controller.OnAfterLevelLoad()
	}
	a.controller.Tick(deltaTime)
	a.overlay.Update(deltaTime)

	return nil
}

// drainSettingsEvents 处理设置文件的热编辑事件
func (a *App) drainSettingsEvents() {
	if a.settingsWatcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.settingsWatcher.Events:
			if !ok {
				a.settingsWatcher = nil
				return
			}
			if err := a.settingsManager.LoadFile(path); err != nil {
				log.Printf("[App] Warning: %v (keeping current settings)", err)
			}
		case err, ok := <-a.settingsWatcher.Errors:
			if !ok {
				a.settingsWatcher = nil
				return
			}
			log.Printf("[App] Settings watcher error: %v", err)
		default:
			return
		}
	}
}

// Draw 绘制演示画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	// 加载期间控制器会要求跳过世界渲染
	if !a.overlay.WorldRenderingSuppressed() {
		a.drawWorld(screen)
	}

	// 加载界面始终绘制在最上层
	a.overlay.Draw(screen)

	if a.verbose {
		a.drawDebugInfo(screen)
	}
}

// drawWorld 绘制演示世界（纯色草地背景 + 世界状态）
func (a *App) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 144, G: 238, B: 144, A: 255})

	if world := a.session.CurrentWorld(); world != nil {
		status := world.Name
		if world.HasBegunPlay() {
			status += " (playing)"
		} else {
			status += " (waiting for begin play)"
		}
		ebitenutil.DebugPrintAt(screen, status, 10, config.GameWindowHeight-20)
	}
}

// drawDebugInfo 绘制控制器状态调试信息
func (a *App) drawDebugInfo(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("displayed: %v", a.controller.IsDisplayed()), 10, 10)
	ebitenutil.DebugPrintAt(screen, "reason: "+a.controller.DisplayReason(), 10, 26)

	// AdditionalTimeRemaining 仅在等待附加时长时有意义
	if a.controller.IsWaitingForAdditionalTime() {
		remaining := a.controller.AdditionalTimeRemaining()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("hold remaining: %.1fs", remaining), 10, 42)
	}

	ebitenutil.DebugPrintAt(screen, "[R] reload level  [F] force visibility", 10, config.GameWindowHeight-40)
}

// Shutdown 释放应用持有的资源
// 窗口关闭时调用：停止设置监视并执行控制器清理
func (a *App) Shutdown() {
	if a.settingsWatcher != nil {
		_ = a.settingsWatcher.Close()
		a.settingsWatcher = nil
	}
	a.controller.Shutdown()
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Controller 返回加载界面控制器
func (a *App) Controller() *game.LoadingScreenController {
	return a.controller
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
