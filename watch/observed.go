package watch

import (
	"github.com/boxdox/bitflags"
)

// Observed 包装一个标志集, 写操作引起实际翻转时向Hub抛出事件；
//
// 注意事项:
//  1. 只有真实翻转才产生事件, 重复置位/清零不会触发;
//  2. 未命名的野位翻转不产生事件, 没有可上报的标志名;
//  3. 分发在调用方goroutine上同步执行;
type Observed struct {
	set     *bitflags.FlagSet
	hub     *Hub
	entries []bitflags.Entry // 定义不可变, 注册时缓存一份
}

// Observe 包装标志集并挂上新的Hub
func Observe(set *bitflags.FlagSet) *Observed {
	return &Observed{
		set:     set,
		hub:     NewHub(),
		entries: set.Definition().Entries(),
	}
}

// Hub 返回事件分发器, 供注册/反注册监听器
func (o *Observed) Hub() *Hub {
	return o.hub
}

// FlagSet 返回被包装的标志集, 查询直接走它
func (o *Observed) FlagSet() *bitflags.FlagSet {
	return o.set
}

// Watch 快速注册关注指定标志的监听器
func (o *Observed) Watch(flag string, priority int, consume func(c Change)) *Listener {
	return o.hub.Watch(flag, priority, consume)
}

// Set 置位指定标志, 发生翻转时抛出事件
func (o *Observed) Set(f bitflags.Flag) error {
	before := o.set.RawMask()
	if err := o.set.Set(f); err != nil {
		return err
	}
	o.announce(before)
	return nil
}

// Clear 清零指定标志, 发生翻转时抛出事件
func (o *Observed) Clear(f bitflags.Flag) error {
	before := o.set.RawMask()
	if err := o.set.Clear(f); err != nil {
		return err
	}
	o.announce(before)
	return nil
}

// Toggle 翻转指定标志并抛出事件
func (o *Observed) Toggle(f bitflags.Flag) error {
	before := o.set.RawMask()
	if err := o.set.Toggle(f); err != nil {
		return err
	}
	o.announce(before)
	return nil
}

// SetAll 置位全部已命名标志, 每个真实翻转的标志各抛一个事件
func (o *Observed) SetAll() {
	before := o.set.RawMask()
	o.set.SetAll()
	o.announce(before)
}

// ClearAll 清零整个取值, 每个真实翻转的已命名标志各抛一个事件
func (o *Observed) ClearAll() {
	before := o.set.RawMask()
	o.set.ClearAll()
	o.announce(before)
}

// announce 对比写前写后的取值, 对每个翻转的已命名位抛出事件
func (o *Observed) announce(before bitflags.Mask) {
	after := o.set.RawMask()
	diff := before ^ after
	if diff == 0 {
		return
	}

	for _, e := range o.entries {
		bit := bitflags.Mask(1) << e.Bit
		if !diff.IncludeAny(bit) {
			continue
		}
		op := OpClear
		if after.Include(bit) {
			op = OpSet
		}
		o.hub.Fire(Change{Flag: e.Name, Bit: e.Bit, Op: op, Value: after})
	}
}
