package watch

import (
	"github.com/boxdox/bitflags"
)

// Op 标志翻转的方向
type Op uint8

const (
	OpSet   Op = iota + 1 // 置位
	OpClear               // 清零
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change 描述一次标志翻转
type Change struct {
	Flag  string        // 标志名
	Bit   uint          // 位序
	Op    Op            // 翻转方向
	Value bitflags.Mask // 翻转后的整体取值
}

// Hub 按标志名向监听器分发翻转事件
type Hub struct {
	listenerSets map[string]*listenerSet
}

func NewHub() *Hub {
	return &Hub{
		listenerSets: make(map[string]*listenerSet),
	}
}

// Watch 快速注册关注指定标志的监听器
func (h *Hub) Watch(flag string, priority int, consume func(c Change)) *Listener {
	if consume == nil {
		return nil
	}

	l := NewListener(flag, priority, consume)
	h.Register(l)
	return l
}

// Register 注册监听器
func (h *Hub) Register(l *Listener) {
	if l == nil {
		return
	}

	elem, ok := h.listenerSets[l.flag]
	if !ok {
		elem = newListenerSet()
		h.listenerSets[l.flag] = elem
	}
	elem.register(l)
}

// Unregister 反注册监听器
func (h *Hub) Unregister(l *Listener) {
	if l == nil {
		return
	}

	elem, ok := h.listenerSets[l.flag]
	if ok {
		elem.unregister(l)
		// 清掉空集合防止泄漏
		if elem.Len() == 0 {
			delete(h.listenerSets, l.flag)
		}
	}
}

// Fire 向关注该标志的监听器分发事件
func (h *Hub) Fire(c Change) {
	elem, ok := h.listenerSets[c.Flag]
	if ok {
		elem.consume(c)
	}
}
