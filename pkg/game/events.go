package game

// HoldTimeStartedFunc 附加显示时长开始时的回调，参数为本次生效的附加时长（秒）
type HoldTimeStartedFunc func(holdSecs float64)

// VisibilityChangedFunc 加载界面可见性变化时的回调，参数为新的显示状态
type VisibilityChangedFunc func(displayed bool)

// 监听器按注册顺序同步调用，回调返回前触发方不会继续执行。
// 回调内不应再修改控制器状态（无重入保证）。

type holdTimeListener struct {
	id int
	fn HoldTimeStartedFunc
}

type visibilityListener struct {
	id int
	fn VisibilityChangedFunc
}

type listenerSet struct {
	nextID     int
	holdTime   []holdTimeListener
	visibility []visibilityListener
}

// addHoldTime 注册回调，返回用于注销的函数
func (ls *listenerSet) addHoldTime(fn HoldTimeStartedFunc) func() {
	ls.nextID++
	id := ls.nextID
	ls.holdTime = append(ls.holdTime, holdTimeListener{id: id, fn: fn})
	return func() {
		for i, l := range ls.holdTime {
			if l.id == id {
				ls.holdTime = append(ls.holdTime[:i], ls.holdTime[i+1:]...)
				return
			}
		}
	}
}

// addVisibility 注册回调，返回用于注销的函数
func (ls *listenerSet) addVisibility(fn VisibilityChangedFunc) func() {
	ls.nextID++
	id := ls.nextID
	ls.visibility = append(ls.visibility, visibilityListener{id: id, fn: fn})
	return func() {
		for i, l := range ls.visibility {
			if l.id == id {
				ls.visibility = append(ls.visibility[:i], ls.visibility[i+1:]...)
				return
			}
		}
	}
}

func (ls *listenerSet) broadcastHoldTime(holdSecs float64) {
	for _, l := range ls.holdTime {
		l.fn(holdSecs)
	}
}

func (ls *listenerSet) broadcastVisibility(displayed bool) {
	for _, l := range ls.visibility {
		l.fn(displayed)
	}
}
