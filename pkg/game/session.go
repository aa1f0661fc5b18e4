package game

import "log"

// SessionQuery 提供控制器判定所需的宿主会话状态查询
//
// 所有查询都是只读的布尔探针，由宿主环境实现。
// "编辑器环境"与"宿主已初始化"的具体判定标准由宿主自行定义。
type SessionQuery interface {
	// HasWorldContext 当前会话是否持有世界上下文
	HasWorldContext() bool

	// WorldExists 世界上下文中的世界引用是否有效
	WorldExists() bool

	// WorldHasBegunPlay 世界是否已进入游玩阶段
	WorldHasBegunPlay() bool

	// IsEditorLikeEnvironment 是否运行在编辑器预览类环境中
	IsEditorLikeEnvironment() bool

	// HostIsInitialized 宿主环境是否已完成初始化
	HostIsInitialized() bool
}

// World 演示宿主中的世界对象
type World struct {
	Name      string
	begunPlay bool
}

// HasBegunPlay 世界是否已进入游玩阶段
func (w *World) HasBegunPlay() bool {
	return w.begunPlay
}

// BeginPlay 标记世界进入游玩阶段
func (w *World) BeginPlay() {
	if w.begunPlay {
		return
	}
	w.begunPlay = true
	log.Printf("[Session] World %q has begun play", w.Name)
}

// WorldSession 演示宿主的会话实现
//
// 模拟一次关卡加载的生命周期：
//  1. StartLevelLoad 丢弃当前世界（世界引用变为空）
//  2. 经过 loadSecs 秒后世界创建完成（WorldExists 为 true）
//  3. 再经过 beginPlaySecs 秒后世界进入游玩阶段
//
// 时间由 Advance 以 deltaTime 推进，与控制器的 Tick 节奏一致
type WorldSession struct {
	hostInitialized bool
	editorLike      bool

	hasContext bool
	world      *World

	// 加载进度（剩余秒数，<= 0 表示该阶段完成）
	pendingLevel   string
	loadRemaining  float64
	beginRemaining float64
	loading        bool
}

// NewWorldSession 创建演示会话
// 初始状态：宿主已初始化、无世界上下文（对应引导阶段）
func NewWorldSession(editorLike bool) *WorldSession {
	return &WorldSession{
		hostInitialized: true,
		editorLike:      editorLike,
	}
}

// StartLevelLoad 开始加载指定关卡
//
// 当前世界立即失效；loadSecs 秒后世界创建完成，
// 再过 beginPlaySecs 秒进入游玩阶段
func (s *WorldSession) StartLevelLoad(level string, loadSecs, beginPlaySecs float64) {
	log.Printf("[Session] Loading level %q (%.1fs load, %.1fs begin play)", level, loadSecs, beginPlaySecs)
	s.hasContext = true
	s.world = nil
	s.pendingLevel = level
	s.loadRemaining = loadSecs
	s.beginRemaining = beginPlaySecs
	s.loading = true
}

// Advance 推进模拟时间
//
// 返回 true 表示本次推进完成了关卡加载（世界刚创建完成），
// 宿主应在此时调用控制器的 OnAfterLevelLoad
func (s *WorldSession) Advance(deltaTime float64) bool {
	if !s.loading {
		return false
	}

	if s.world == nil {
		s.loadRemaining -= deltaTime
		if s.loadRemaining > 0 {
			return false
		}
		s.world = &World{Name: s.pendingLevel}
		log.Printf("[Session] World %q created", s.pendingLevel)
		return true
	}

	s.beginRemaining -= deltaTime
	if s.beginRemaining <= 0 {
		s.world.BeginPlay()
		s.loading = false
	}
	return false
}

// CurrentWorld 返回当前世界，可能为 nil
func (s *WorldSession) CurrentWorld() *World {
	return s.world
}

// SetHostInitialized 设置宿主初始化状态（测试与引导阶段使用）
func (s *WorldSession) SetHostInitialized(initialized bool) {
	s.hostInitialized = initialized
}

// SetEditorLikeEnvironment 设置编辑器环境标志
func (s *WorldSession) SetEditorLikeEnvironment(editorLike bool) {
	s.editorLike = editorLike
}

// HasWorldContext 实现 SessionQuery
func (s *WorldSession) HasWorldContext() bool {
	return s.hasContext
}

// WorldExists 实现 SessionQuery
func (s *WorldSession) WorldExists() bool {
	return s.world != nil
}

// WorldHasBegunPlay 实现 SessionQuery
func (s *WorldSession) WorldHasBegunPlay() bool {
	return s.world != nil && s.world.HasBegunPlay()
}

// IsEditorLikeEnvironment 实现 SessionQuery
func (s *WorldSession) IsEditorLikeEnvironment() bool {
	return s.editorLike
}

// HostIsInitialized 实现 SessionQuery
func (s *WorldSession) HostIsInitialized() bool {
	return s.hostInitialized
}
