package bitflags

import "math/bits"

// Mask 位掩码
//
// 基于 uint64 的原始位运算层，FlagSet 的底层取值类型。
// 一个 Mask 最多承载64个布尔位，内存占用固定8字节。
//
// 设计特点：
//   - 所有操作都是O(1)的位运算，无内存分配
//   - 可同时操作多个位（通过 | 组合掩码传入）
//   - 与具体标志名无关：名字到位的映射由 Definition 负责
//
// 使用场景：
//   - 作为 FlagSet 的内部取值
//   - 需要绕过名字层、直接按掩码批量操作的高级用法
//
// 示例用法：
//
//	var m Mask
//	m.Set(1<<0 | 1<<3)      // 同时置位 bit0 和 bit3
//	if m.Include(1 << 3) {  // 检查 bit3
//	    // ...
//	}
//
// 注意事项：
//   - 位掩码建议使用 1 << n 的形式构造（n: 0-63）
//   - 空掩码(0)在位运算中不起作用，Set(0)/Clean(0)均为无操作
type Mask uint64

// Set 置位指定的一个或多个位
//
// 操作：将指定位设为1，不影响其他位
// 位运算：m = m | bits
//
// 重复置位同一个位是安全的，不会产生副作用。
func (m *Mask) Set(bits Mask) {
	*m |= bits
}

// Clean 清除指定的一个或多个位
//
// 操作：将指定位设为0，不影响其他位
// 位运算：m = m &^ bits
//
// 清除未置位的位是安全的，不会产生副作用。
func (m *Mask) Clean(bits Mask) {
	*m = m.Exclude(bits)
}

// Flip 翻转指定的一个或多个位
//
// 操作：已置位的清除，未置位的置位
// 位运算：m = m ^ bits
//
// 连续对同一位翻转两次会恢复原值。
func (m *Mask) Flip(bits Mask) {
	*m ^= bits
}

// Include 判断是否包含所有指定的位（AND 逻辑）
//
// 检查逻辑：bits 中的每一个位都必须在 m 中被置位
// 位运算：(m & bits) == bits
//
// 示例：
//
//	m := Mask(1<<0 | 1<<2)
//	m.Include(1 << 0)          // true
//	m.Include(1<<0 | 1<<2)     // true
//	m.Include(1<<0 | 1<<1)     // false，缺少 bit1
//	m.Include(0)               // true，空集是任何集合的子集
func (m *Mask) Include(bits Mask) bool {
	return (*m & bits) == bits
}

// IncludeAny 判断是否包含任意一个指定的位（OR 逻辑）
//
// 检查逻辑：bits 中只要有任意一个位在 m 中被置位即可
// 位运算：(m & bits) != 0
//
// 注意：IncludeAny(0) 恒为 false。
func (m *Mask) IncludeAny(bits Mask) bool {
	return (*m & bits) != 0
}

// Exclude 返回移除指定位后的新值（不修改原值）
//
// 位运算：result = m &^ bits
//
// 如需直接修改原值，请使用 Clean 方法。
func (m *Mask) Exclude(bits Mask) Mask {
	return *m &^ bits
}

// Equal 判断两个 Mask 是否完全相等
//
// 逐位精确比较。如需检查包含关系，请使用 Include 或 IncludeAny 方法。
func (m *Mask) Equal(bits Mask) bool {
	return *m == bits
}

// Count 返回已置位的位数量（population count）
func (m *Mask) Count() int {
	return bits.OnesCount64(uint64(*m))
}
