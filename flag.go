package bitflags

// Flag 标志选择器
//
// 所有按标志操作的方法（Set/Clear/Toggle/IsSet）都通过 Flag 定位目标位，
// 既可以用标志名，也可以用位序号：
//
//	set.Set(bitflags.Name("READ"))  // 按名字
//	set.Set(bitflags.Bit(3))        // 按位序号
//
// Flag 是封闭接口，仅有 Name 和 Bit 两种实现；
// 解析由 Definition.Resolve 统一完成，未定义的名字或位序号一律报错，
// 不会退化成任何默认标志。
type Flag interface {
	isFlag()
}

// Name 按标志名定位
type Name string

// Bit 按位序号定位(从0开始, bit0为最低位)
type Bit uint

func (Name) isFlag() {}
func (Bit) isFlag()  {}
