package bitflags

import (
	"fmt"
	"strconv"
)

// ParseBinary 从二进制字符串解析出标志集
//
// 这是面向外部输入的严格入口:
//   - 输入必须非空, 且只含字符'0'和'1'
//   - 解析值不允许在最高已定义位之上出现置位; 低于最高位但未命名的位
//     允许存在(作为外来位保留), 与数值构造入口保持一致
//
// 校验通过后按宽松入口构造, 取值即解析结果。
func ParseBinary(text string, def *Definition) (*FlagSet, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedBinaryString)
	}
	for i, r := range text {
		if r != '0' && r != '1' {
			return nil, fmt.Errorf("%w: unexpected character %q at index %d", ErrMalformedBinaryString, r, i)
		}
	}
	if def == nil || def.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty definition", ErrInvalidDefinition)
	}

	value, err := strconv.ParseUint(text, 2, 64)
	if err != nil {
		// 字符集已校验过, 走到这里只可能是超过64位
		return nil, fmt.Errorf("%w: %d digits exceed the 64-bit value range", ErrOutOfRangeBits, len(text))
	}

	// 覆盖0..maxBit的掩码, 之上的置位一律拒绝
	allowed := Mask(^uint64(0) >> (maxBitPosition - def.MaxBit()))
	parsed := Mask(value)
	if out := parsed.Exclude(allowed); out != 0 {
		return nil, fmt.Errorf("%w: bits above position %d are set (offending value %#b)",
			ErrOutOfRangeBits, def.MaxBit(), uint64(out))
	}

	return NewWithValue(def, value)
}

// BinaryString 返回取值的二进制表示
//
// 宽度取 max(minWidth, 容量), 不足左补'0'; 传入小于容量的宽度不会截断,
// 渲染宽度永远不低于容量。
func (fs *FlagSet) BinaryString(minWidth int) string {
	width := fs.def.Capacity()
	if minWidth > width {
		width = minWidth
	}
	return fmt.Sprintf("%0*b", width, uint64(fs.value))
}

// String 实现fmt.Stringer, 等价于BinaryString(0)
func (fs *FlagSet) String() string {
	return fs.BinaryString(0)
}
