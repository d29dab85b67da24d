// Package bitflags 以名字管理一组位标志
//
// 把一组布尔开关定义成"标志名→位序号"的映射(Definition), 然后在一个
// uint64 取值上按名字置位/清除/翻转/查询, 不必在业务代码里散落魔法位移。
// 适用于权限位、协议选项字段、对象状态位等场景。
//
// 典型用法:
//
//	def, _ := bitflags.NewDefinition(
//	    bitflags.Entry{Name: "READ", Bit: 0},
//	    bitflags.Entry{Name: "WRITE", Bit: 1},
//	    bitflags.Entry{Name: "EXECUTE", Bit: 2},
//	)
//	set, _ := bitflags.New(def)
//	set.MustSet(bitflags.Name("READ")).MustSet(bitflags.Bit(2))
//	set.CurrentNames()  // ["READ", "EXECUTE"]
//	set.BinaryString(0) // "0101", 按容量左补零
package bitflags

import "fmt"

// FlagSet 命名位标志集
//
// 持有一个可变取值(value)和一份不可变定义表(def)。定义表在构造时绑定,
// 之后只读; 取值随Set/Clear/Toggle/SetAll/ClearAll变化。
//
// 注意事项:
//   - 实例内部不加锁, 多goroutine共改同一实例时由调用方自行互斥;
//     只读共享Definition是安全的
//   - 数值构造入口(NewWithValue)不校验初值, 未命名位("外来位")原样保留,
//     可经Value/BinaryString读出但无法按名字访问; 字符串解析入口
//     (ParseBinary)则严格拒绝超出最高已定义位的置位。两个入口的宽严差异
//     是有意保留的行为, 调整前需评估存量调用方
type FlagSet struct {
	value Mask        // 当前取值
	def   *Definition // 定义表, 构造后只读
}

// New 基于定义表创建标志集, 初值为0
func New(def *Definition) (*FlagSet, error) {
	return NewWithValue(def, 0)
}

// NewWithValue 基于定义表和初值创建标志集
//
// 初值不做范围校验, 任何uint64都原样接受, 包括含有未定义位的值;
// 这是面向内部可信数据的宽松入口, 外部输入请走ParseBinary。
func NewWithValue(def *Definition, initial uint64) (*FlagSet, error) {
	if def == nil || def.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty definition", ErrInvalidDefinition)
	}

	return &FlagSet{
		value: Mask(initial),
		def:   def,
	}, nil
}

// Set 置位指定标志
//
// 选择器解析失败时原样返回解析错误, 取值不变。
// 重复置位已置位的标志不改变取值。
func (fs *FlagSet) Set(f Flag) error {
	bit, err := fs.def.Resolve(f)
	if err != nil {
		return err
	}
	fs.value.Set(Mask(1) << bit)
	return nil
}

// Clear 清除指定标志
//
// 清除未置位的标志不改变取值。
func (fs *FlagSet) Clear(f Flag) error {
	bit, err := fs.def.Resolve(f)
	if err != nil {
		return err
	}
	fs.value.Clean(Mask(1) << bit)
	return nil
}

// Toggle 翻转指定标志: 已置位的清除, 未置位的置位
func (fs *FlagSet) Toggle(f Flag) error {
	bit, err := fs.def.Resolve(f)
	if err != nil {
		return err
	}
	fs.value.Flip(Mask(1) << bit)
	return nil
}

// MustSet 置位指定标志并返回实例本身, 支持链式调用
//
// 选择器解析失败时panic, 仅建议用于编码期就能确定合法的标志:
//
//	set.MustSet(bitflags.Name("READ")).MustSet(bitflags.Name("WRITE"))
func (fs *FlagSet) MustSet(f Flag) *FlagSet {
	if err := fs.Set(f); err != nil {
		panic(err)
	}
	return fs
}

// MustClear 清除指定标志并返回实例本身, 解析失败时panic
func (fs *FlagSet) MustClear(f Flag) *FlagSet {
	if err := fs.Clear(f); err != nil {
		panic(err)
	}
	return fs
}

// MustToggle 翻转指定标志并返回实例本身, 解析失败时panic
func (fs *FlagSet) MustToggle(f Flag) *FlagSet {
	if err := fs.Toggle(f); err != nil {
		panic(err)
	}
	return fs
}

// SetAll 置位全部已定义标志
//
// 与各标志先前的状态无关; 已存在的外来位不受影响。
func (fs *FlagSet) SetAll() {
	fs.value.Set(fs.def.Positions())
}

// ClearAll 将取值归零
//
// 已定义位和外来位一并清除。
func (fs *FlagSet) ClearAll() {
	fs.value = 0
}

// IsSet 查询指定标志当前是否置位
func (fs *FlagSet) IsSet(f Flag) (bool, error) {
	bit, err := fs.def.Resolve(f)
	if err != nil {
		return false, err
	}
	return fs.value.Include(Mask(1) << bit), nil
}

// CurrentNames 返回当前已置位标志的名字
//
// 顺序与定义表的声明顺序一致, 不按位序号排序;
// 外来位没有名字, 永远不会出现在结果里。
func (fs *FlagSet) CurrentNames() []string {
	names := make([]string, 0, len(fs.def.entries))
	for _, e := range fs.def.entries {
		if fs.value.Include(Mask(1) << e.Bit) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Count 返回当前取值中置1的位数量
//
// 统计的是完整取值, 外来位同样计入。
func (fs *FlagSet) Count() int {
	return fs.value.Count()
}

// Value 返回当前取值
func (fs *FlagSet) Value() uint64 {
	return uint64(fs.value)
}

// RawMask 以Mask类型返回当前取值, 便于直接做掩码运算
func (fs *FlagSet) RawMask() Mask {
	return fs.value
}

// Capacity 返回定义表的容量(覆盖全部已定义位的最小2的幂位宽)
func (fs *FlagSet) Capacity() int {
	return fs.def.Capacity()
}

// Definition 返回绑定的定义表
func (fs *FlagSet) Definition() *Definition {
	return fs.def
}
