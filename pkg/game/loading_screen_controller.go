package game

import (
	"fmt"
	"log"

	"github.com/decker502/loadscreen/pkg/config"
)

// SettingsProvider 提供加载界面设置
//
// 控制器在每次判定前重新读取设置，因此设置可以在运行期间被修改
// （例如通过热编辑的设置文件）
type SettingsProvider interface {
	Settings() *config.LoadingScreenSettings
}

// dismissedNone 表示当前没有处于附加显示窗口（时间戳未设置）
const dismissedNone = -1.0

// defaultGameLogicReason 游戏逻辑未指定原因时的占位文本
const defaultGameLogicReason = "requested by game logic (no reason specified)"

// LoadingScreenController 决定加载界面何时显示、何时隐藏
//
// 核心是两状态状态机（Hidden / Displayed）：
//   - 每个 Tick 做一次判定：聚合多个"必须显示"信号，首个命中的原因生效
//   - 所有阻塞信号消失后，继续显示 HoldAdditionalSecs 秒以遮盖贴图/几何体流送
//   - 状态切换时同步广播 HoldTimeStarted / VisibilityChanged 通知
//
// 控制器假定单线程驱动：Tick、生命周期钩子与所有查询/命令都只能在
// 宿主主循环线程上调用，内部不加锁。
//
// 参考 Lyra 的 LoadingScreenManager 思路。
type LoadingScreenController struct {
	clock     Clock
	session   SessionQuery
	settings  SettingsProvider
	presenter Presenter

	// 状态机当前状态
	isDisplayed bool

	// 最近一次判定的原因说明，仅用于调试
	stateReason string

	// 最近一次"无阻塞原因"的时刻（秒）；dismissedNone 表示阻塞原因仍然存在
	lastDismissedAt float64

	// 游戏逻辑显式要求显示的标志与原因，保持到下次被修改为止
	displayedByGameLogic bool
	userSpecifiedReason  string

	listeners listenerSet
}

// NewLoadingScreenController 创建加载界面控制器
//
// 所有协作者必须非 nil。无界面的会话（例如专用服务器）不应创建控制器。
func NewLoadingScreenController(clock Clock, session SessionQuery, settings SettingsProvider, presenter Presenter) *LoadingScreenController {
	return &LoadingScreenController{
		clock:           clock,
		session:         session,
		settings:        settings,
		presenter:       presenter,
		lastDismissedAt: dismissedNone,
	}
}

// Tick 每个模拟步调用一次，执行一轮判定并应用结果
// deltaTime 当前未使用：附加显示时长按墙钟计算，与帧率无关
func (c *LoadingScreenController) Tick(deltaTime float64) {
	c.updateLoadingScreen()
}

// OnBeforeLevelLoad 关卡加载开始前的钩子
//
// 立即执行一轮判定，保证加载界面在阻塞加载开始前出现，
// 而不必等到下一个 Tick。宿主尚未初始化完成时跳过（下个 Tick 会重试）
func (c *LoadingScreenController) OnBeforeLevelLoad() {
	if !c.session.HostIsInitialized() {
		return
	}
	c.updateLoadingScreen()
}

// OnAfterLevelLoad 关卡加载完成后的钩子
// 有意留空：后续判定由常规 Tick 负责
func (c *LoadingScreenController) OnAfterLevelLoad() {
}

// Shutdown 控制器销毁时的清理
// 如果加载界面仍在显示，执行一次完整的隐藏转换，保证指示器资源被释放
func (c *LoadingScreenController) Shutdown() {
	c.hideLoadingScreen()
}

// IsDisplayed 返回加载界面当前是否显示
func (c *LoadingScreenController) IsDisplayed() bool {
	return c.isDisplayed
}

// ForceDisplayStateByGameLogic 由游戏逻辑强制显示或隐藏加载界面
//
// 用于提前拉起加载界面或让其多停留一段时间（例如过场演出）。
// 标志保持到下次调用为止，在下一轮判定时生效，本调用不触发判定
func (c *LoadingScreenController) ForceDisplayStateByGameLogic(visible bool, reason string) {
	c.displayedByGameLogic = visible
	c.userSpecifiedReason = reason
}

// IsWaitingForAdditionalTime 是否正处于附加显示窗口内
func (c *LoadingScreenController) IsWaitingForAdditionalTime() bool {
	// 加载界面根本没有显示
	if !c.isDisplayed {
		return false
	}

	// 没有配置附加显示时长
	if c.settings.Settings().HoldAdditionalSecs <= 0 {
		return false
	}

	// 时间戳已设置，说明正在等待附加时长
	return c.lastDismissedAt != dismissedNone
}

// AdditionalTimeRemaining 返回附加显示窗口的剩余秒数
// 仅在 IsWaitingForAdditionalTime() 为 true 时有意义，调用方须先检查
func (c *LoadingScreenController) AdditionalTimeRemaining() float64 {
	elapsed := c.clock.Now() - c.lastDismissedAt
	return c.settings.Settings().HoldAdditionalSecs - elapsed
}

// DisplayReason 返回最近一次判定的原因说明（仅用于调试）
func (c *LoadingScreenController) DisplayReason() string {
	return c.stateReason
}

// AddHoldTimeStartedListener 注册附加显示开始通知，返回注销函数
func (c *LoadingScreenController) AddHoldTimeStartedListener(fn HoldTimeStartedFunc) func() {
	return c.listeners.addHoldTime(fn)
}

// AddVisibilityChangedListener 注册可见性变化通知，返回注销函数
func (c *LoadingScreenController) AddVisibilityChangedListener(fn VisibilityChangedFunc) func() {
	return c.listeners.addVisibility(fn)
}

// checkForDisplayReason 逐项检查是否存在必须显示加载界面的原因
//
// 检查有固定顺序，首个命中的原因生效。只读，不修改任何状态
//（stateReason 除外，它在每次判定时都会被覆盖）
func (c *LoadingScreenController) checkForDisplayReason() bool {
	settings := c.settings.Settings()

	// 设置中强制显示
	if settings.ForceDisplay {
		c.stateReason = "forced by configuration"
		return true
	}

	// 没有世界上下文，多半还没有关卡
	if !c.session.HasWorldContext() {
		c.stateReason = "no world context"
		return true
	}

	// 世界引用为空
	if !c.session.WorldExists() {
		c.stateReason = "world reference is null"
		return true
	}

	// 世界还没准备好
	if !c.session.WorldHasBegunPlay() {
		c.stateReason = "world hasn't begun play"
		return true
	}

	// 游戏逻辑要求显示
	if c.displayedByGameLogic {
		if c.userSpecifiedReason == "" {
			c.stateReason = defaultGameLogicReason
		} else {
			c.stateReason = c.userSpecifiedReason
		}
		return true
	}

	c.stateReason = "no reason to display"
	return false
}

// shouldShowLoadingScreen 得出最终的"是否显示"结论
//
// 除阻塞原因外，还负责附加显示窗口的计时：
// 阻塞原因消失的第一个瞬间记录时间戳并广播 HoldTimeStarted，
// 此后在窗口内继续返回 true；阻塞原因重新出现则取消整个窗口
func (c *LoadingScreenController) shouldShowLoadingScreen() bool {
	needToShow := c.checkForDisplayReason()

	settings := c.settings.Settings()

	forcedToShow := false
	if needToShow {
		// 仍有阻塞原因，重置附加显示计时
		c.lastDismissedAt = dismissedNone
	} else {
		now := c.clock.Now()
		holdTime := settings.HoldAdditionalSecs

		// 编辑器环境且关闭了编辑器内等待时，完全跳过附加时长
		if c.session.IsEditorLikeEnvironment() && !settings.ShowHoldTimeInEditor {
			holdTime = 0
		}

		// 第一次走到这里时记录时间戳
		if c.lastDismissedAt == dismissedNone {
			c.lastDismissedAt = now
			c.listeners.broadcastHoldTime(holdTime)
		}
		sinceDismissed := now - c.lastDismissedAt

		// 继续显示一段时间，遮盖几何体与贴图流送
		if holdTime > 0 && sinceDismissed < holdTime {
			// 此时必须渲染世界，贴图才会真正流送进来
			c.presenter.SetWorldRenderingSuppressed(false)

			c.stateReason = fmt.Sprintf("holding screen up for %.2f more seconds to allow texture streaming", holdTime-sinceDismissed)
			forcedToShow = true
		}
	}

	return needToShow || forcedToShow
}

// updateLoadingScreen 执行一轮完整的判定并应用结果
func (c *LoadingScreenController) updateLoadingScreen() {
	if c.shouldShowLoadingScreen() {
		c.showLoadingScreen()
	} else {
		c.hideLoadingScreen()
	}

	if c.settings.Settings().LogReasons {
		log.Printf("[LoadingScreen] Display status: %v. Reason: %s", c.isDisplayed, c.stateReason)
	}
}

// showLoadingScreen 执行 Hidden -> Displayed 转换
func (c *LoadingScreenController) showLoadingScreen() {
	// 已经在显示
	if c.isDisplayed {
		return
	}

	c.isDisplayed = true
	c.listeners.broadcastVisibility(true)

	c.presenter.AttachIndicator()

	// 加载期间不渲染世界，并提高流送优先级
	c.presenter.SetWorldRenderingSuppressed(true)
	c.presenter.SetHighPriorityStreaming(true)
}

// hideLoadingScreen 执行 Displayed -> Hidden 转换
// 先卸载指示器并清除性能开关，再广播通知，保证监听器看到一致的 Presenter 状态
func (c *LoadingScreenController) hideLoadingScreen() {
	// 已经隐藏
	if !c.isDisplayed {
		return
	}

	c.presenter.DetachIndicator()
	c.presenter.SetWorldRenderingSuppressed(false)
	c.presenter.SetHighPriorityStreaming(false)

	c.isDisplayed = false
	c.listeners.broadcastVisibility(false)
}
