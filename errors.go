package bitflags

import "errors"

// 位标志操作相关错误定义
//
// 所有错误都在调用点同步返回，库内部不做日志、不做吞没；
// 细节（出错的标志名、位序号、合法取值列表等）通过 fmt.Errorf 的 %w
// 包装附加在消息里，调用方用 errors.Is 匹配哨兵即可。
var (
	// ErrInvalidDefinition 标志定义无效
	// 可能原因：定义为空、定义为nil、标志名为空白、同名标志重复声明
	ErrInvalidDefinition = errors.New("invalid flag definition")

	// ErrDuplicateBitPosition 位序号被多个标志占用
	// 同一个位只允许绑定一个标志名
	ErrDuplicateBitPosition = errors.New("duplicate bit position")

	// ErrBitOverflow 位序号超出可表示范围
	// 取值基于 uint64，合法位序号为 0-63
	ErrBitOverflow = errors.New("bit position out of range")

	// ErrMalformedBinaryString 二进制字符串格式错误
	// 可能原因：输入为空、含有'0'/'1'以外的字符
	ErrMalformedBinaryString = errors.New("malformed binary string")

	// ErrOutOfRangeBits 解析值含有超出最高已定义位的置位
	// 仅在字符串解析入口做此严格校验，数值构造入口不做
	ErrOutOfRangeBits = errors.New("out of range bits")

	// ErrUnknownFlagName 标志名未定义
	// 错误消息中会列出全部已定义的标志名
	ErrUnknownFlagName = errors.New("unknown flag name")

	// ErrUnknownBitPosition 位序号未定义
	// 错误消息中会列出全部合法的位序号
	ErrUnknownBitPosition = errors.New("unknown bit position")

	// ErrNilFlag 标志选择器为nil
	// 无效的选择器永远不会被解析成某个默认标志
	ErrNilFlag = errors.New("nil flag selector")
)
