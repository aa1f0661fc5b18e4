package game

// Presenter 负责加载指示器的实际显示与相关性能开关
//
// 所有方法都是 fire-and-forget：控制器只发出指令，从不读取结果。
// 指示器资源加载失败等问题由 Presenter 自行兜底（例如退回内置菊花指示器），
// 不会影响控制器的状态机。
type Presenter interface {
	// AttachIndicator 创建并挂载加载指示器
	AttachIndicator()

	// DetachIndicator 卸载并销毁加载指示器
	DetachIndicator()

	// SetHighPriorityStreaming 设置关卡/资源流送是否以高优先级进行
	SetHighPriorityStreaming(enabled bool)

	// SetWorldRenderingSuppressed 设置是否跳过世界渲染
	// 加载界面显示期间跳过渲染以节省开销；附加显示窗口内恢复渲染以驱动贴图流送
	SetWorldRenderingSuppressed(suppressed bool)
}
