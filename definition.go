package bitflags

import (
	"fmt"
	"math/bits"
	"strings"
)

// maxBitPosition 合法位序号上限, 取值层为uint64
const maxBitPosition = 63

// Entry 单个标志的声明: 标志名和它占用的位序号
type Entry struct {
	Name string // 标志名
	Bit  uint   // 位序号(0-63, bit0为最低位)
}

// Definition 一组标志的定义表
//
// 保存标志名到位序号的映射, 以及由此派生的合法位集合和容量。
// 构造成功后不可变, 可以被任意多个FlagSet共享, 并发读取无需加锁。
// 条目顺序即声明顺序, CurrentNames等按序输出的查询都以此为准。
type Definition struct {
	entries   []Entry         // 按声明顺序保存的条目
	byName    map[string]uint // 标志名索引
	positions Mask            // 全部已定义位组成的掩码
	maxBit    uint            // 最高已定义位序号
	capacity  int             // 覆盖全部已定义位的最小2的幂位宽
}

// NewDefinition 根据条目列表构建定义表
//
// 校验规则:
//   - 至少要有一个条目
//   - 标志名不能为空白, 不能重复声明
//   - 位序号取值0-63, 两个标志不能共用同一个位
//
// 容量按 2^ceil(log2(maxBit+1)) 派生, 即不小于 maxBit+1 的最小2的幂;
// 只定义了bit0时容量为1。
func NewDefinition(entries ...Entry) (*Definition, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no flags defined", ErrInvalidDefinition)
	}

	d := &Definition{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]uint, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: blank flag name at bit %d", ErrInvalidDefinition, e.Bit)
		}
		if _, dup := d.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: flag %q declared twice", ErrInvalidDefinition, e.Name)
		}
		if e.Bit > maxBitPosition {
			return nil, fmt.Errorf("%w: flag %q wants bit %d, max is %d", ErrBitOverflow, e.Name, e.Bit, uint(maxBitPosition))
		}
		bit := Mask(1) << e.Bit
		if d.positions.Include(bit) {
			return nil, fmt.Errorf("%w: flag %q reuses bit %d already held by %q",
				ErrDuplicateBitPosition, e.Name, e.Bit, d.nameOfBit(e.Bit))
		}

		d.positions.Set(bit)
		if e.Bit > d.maxBit {
			d.maxBit = e.Bit
		}
		d.byName[e.Name] = e.Bit
		d.entries = append(d.entries, e)
	}
	d.capacity = 1 << bits.Len(uint(d.maxBit))

	return d, nil
}

// Len 返回已定义的标志数量
func (d *Definition) Len() int {
	return len(d.entries)
}

// Names 按声明顺序返回全部标志名
func (d *Definition) Names() []string {
	names := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries 返回全部条目的副本, 修改返回值不影响定义表
func (d *Definition) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// BitOf 查询标志名对应的位序号
func (d *Definition) BitOf(name string) (uint, bool) {
	bit, ok := d.byName[name]
	return bit, ok
}

// Contains 判断位序号是否有标志绑定
func (d *Definition) Contains(pos uint) bool {
	if pos > maxBitPosition {
		return false
	}
	return d.positions.Include(Mask(1) << pos)
}

// Positions 返回全部已定义位组成的掩码
func (d *Definition) Positions() Mask {
	return d.positions
}

// MaxBit 返回最高已定义位序号
func (d *Definition) MaxBit() uint {
	return d.maxBit
}

// Capacity 返回覆盖全部已定义位的最小2的幂位宽
func (d *Definition) Capacity() int {
	return d.capacity
}

// Resolve 将标志选择器解析成已校验的位序号
//
// 这是所有按标志操作的唯一入口: 名字必须已定义, 位序号必须有标志绑定,
// 否则返回对应错误并在消息中列出合法取值。
func (d *Definition) Resolve(f Flag) (uint, error) {
	switch v := f.(type) {
	case Name:
		bit, ok := d.byName[string(v)]
		if !ok {
			return 0, fmt.Errorf("%w %q, defined flags: %s",
				ErrUnknownFlagName, string(v), strings.Join(d.Names(), ", "))
		}
		return bit, nil
	case Bit:
		if !d.Contains(uint(v)) {
			return 0, fmt.Errorf("%w %d, valid positions: %v",
				ErrUnknownBitPosition, uint(v), d.positionList())
		}
		return uint(v), nil
	default:
		return 0, ErrNilFlag
	}
}

// positionList 按升序返回全部合法位序号, 用于错误消息
func (d *Definition) positionList() []uint {
	list := make([]uint, 0, len(d.entries))
	for pos := uint(0); pos <= d.maxBit; pos++ {
		if d.Contains(pos) {
			list = append(list, pos)
		}
	}
	return list
}

// nameOfBit 反查占用指定位的标志名
func (d *Definition) nameOfBit(bit uint) string {
	for _, e := range d.entries {
		if e.Bit == bit {
			return e.Name
		}
	}
	return ""
}
