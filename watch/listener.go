package watch

import (
	"runtime/debug"
	"sort"

	"github.com/boxdox/bitflags/xlog"
)

// Listener 监听器
type Listener struct {
	flag     string         // 关注的标志名
	priority int            // 执行优先级, 数值小的先执行
	consume  func(c Change) // 标志翻转时的回调
}

func NewListener(flag string, priority int, consume func(c Change)) *Listener {
	return &Listener{
		flag:     flag,
		priority: priority,
		consume:  consume,
	}
}

func (l *Listener) onChange(c Change) {
	defer func() {
		if r := recover(); r != nil {
			xlog.Errorf("flag %s priority %d listener panic %v\n%s", l.flag, l.priority, r, string(debug.Stack()))
		}
	}()
	l.consume(c)
}

// ------------------------------------------------------------------------------

// 监听器集合
type listenerSet struct {
	listeners []*Listener
	sorted    bool
}

func newListenerSet() *listenerSet {
	return &listenerSet{
		listeners: []*Listener{},
		sorted:    true,
	}
}

func (set *listenerSet) register(l *Listener) {
	// 防止重复注册同一个监听器实例
	for _, existing := range set.listeners {
		if existing == l {
			return
		}
	}

	set.listeners = append(set.listeners, l)
	set.sorted = false
}

func (set *listenerSet) unregister(l *Listener) {
	for i := 0; i < len(set.listeners); i++ {
		if set.listeners[i] == l {
			copy(set.listeners[i:], set.listeners[i+1:])
			set.listeners[len(set.listeners)-1] = nil // 防止内存泄漏
			set.listeners = set.listeners[:len(set.listeners)-1]
			return
		}
	}
}

func (set *listenerSet) consume(c Change) {
	if !set.sorted {
		sort.Sort(set)
		set.sorted = true
	}
	// 复制一份, 回调中注册/反注册不影响本轮分发
	listeners := make([]*Listener, len(set.listeners))
	copy(listeners, set.listeners)

	// 按优先级顺序执行监听器
	for _, l := range listeners {
		l.onChange(c)
	}
}

// Len implement sort.Interface
func (set *listenerSet) Len() int {
	return len(set.listeners)
}

// Swap implement sort.Interface
func (set *listenerSet) Swap(i, j int) {
	set.listeners[i], set.listeners[j] = set.listeners[j], set.listeners[i]
}

// Less implement sort.Interface
func (set *listenerSet) Less(i, j int) bool {
	return set.listeners[i].priority < set.listeners[j].priority
}
