package bitflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permDefinition(t *testing.T) *Definition {
	t.Helper()
	def, err := NewDefinition(
		Entry{Name: "READ", Bit: 0},
		Entry{Name: "WRITE", Bit: 1},
		Entry{Name: "EXECUTE", Bit: 2},
	)
	require.NoError(t, err)
	return def
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = NewWithValue(&Definition{}, 0)
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestSetClearIsSet(t *testing.T) {
	set, err := New(permDefinition(t))
	require.NoError(t, err)

	require.NoError(t, set.Set(Name("READ")))
	got, err := set.IsSet(Name("READ"))
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, set.Clear(Name("READ")))
	got, err = set.IsSet(Name("READ"))
	require.NoError(t, err)
	assert.False(t, got)

	// 按位序号与按名字等价
	require.NoError(t, set.Set(Bit(2)))
	got, err = set.IsSet(Name("EXECUTE"))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSetClearIdempotent(t *testing.T) {
	set, err := New(permDefinition(t))
	require.NoError(t, err)

	require.NoError(t, set.Set(Name("WRITE")))
	once := set.Value()
	require.NoError(t, set.Set(Name("WRITE")))
	assert.Equal(t, once, set.Value())

	require.NoError(t, set.Clear(Name("WRITE")))
	cleared := set.Value()
	require.NoError(t, set.Clear(Name("WRITE")))
	assert.Equal(t, cleared, set.Value())
}

func TestToggleInvolution(t *testing.T) {
	set, err := NewWithValue(permDefinition(t), 0b101)
	require.NoError(t, err)

	before := set.Value()
	require.NoError(t, set.Toggle(Name("WRITE")))
	assert.NotEqual(t, before, set.Value())
	require.NoError(t, set.Toggle(Name("WRITE")))
	assert.Equal(t, before, set.Value())
}

func TestUnknownSelector(t *testing.T) {
	set, err := New(permDefinition(t))
	require.NoError(t, err)

	require.ErrorIs(t, set.Set(Name("DELETE")), ErrUnknownFlagName)
	require.ErrorIs(t, set.Clear(Bit(9)), ErrUnknownBitPosition)
	require.ErrorIs(t, set.Toggle(nil), ErrNilFlag)

	_, err = set.IsSet(Name("DELETE"))
	require.ErrorIs(t, err, ErrUnknownFlagName)

	// 失败的调用不改变取值
	assert.Equal(t, uint64(0), set.Value())
}

func TestMustChain(t *testing.T) {
	set, err := New(permDefinition(t))
	require.NoError(t, err)

	set.MustSet(Name("READ")).MustSet(Name("EXECUTE")).MustClear(Name("READ")).MustToggle(Bit(1))
	assert.Equal(t, uint64(0b110), set.Value())

	assert.Panics(t, func() {
		set.MustSet(Name("DELETE"))
	})
}

func TestSetAllClearAll(t *testing.T) {
	def := permDefinition(t)
	set, err := New(def)
	require.NoError(t, err)

	set.SetAll()
	assert.Equal(t, def.Len(), set.Count())
	assert.Equal(t, []string{"READ", "WRITE", "EXECUTE"}, set.CurrentNames())

	set.ClearAll()
	assert.Equal(t, 0, set.Count())
	assert.Empty(t, set.CurrentNames())
}

func TestCurrentNamesOrder(t *testing.T) {
	// 声明顺序: FOO(0), BAR(3), BAZ(5)
	def, err := NewDefinition(
		Entry{Name: "FOO", Bit: 0},
		Entry{Name: "BAR", Bit: 3},
		Entry{Name: "BAZ", Bit: 5},
	)
	require.NoError(t, err)

	set, err := New(def)
	require.NoError(t, err)

	set.MustSet(Name("BAR")).MustSet(Name("BAZ"))
	assert.Equal(t, []string{"BAR", "BAZ"}, set.CurrentNames())

	// 后置位的FOO按声明顺序排在最前, 而不是按置位时间
	set.MustSet(Name("FOO"))
	assert.Equal(t, []string{"FOO", "BAR", "BAZ"}, set.CurrentNames())
}

func TestForeignBits(t *testing.T) {
	def, err := NewDefinition(Entry{Name: "A", Bit: 0})
	require.NoError(t, err)

	// bit1和bit3都没有名字, 宽松入口原样保留
	set, err := NewWithValue(def, 0b1010)
	require.NoError(t, err)

	assert.Equal(t, uint64(0b1010), set.Value())
	assert.Equal(t, 2, set.Count())
	assert.Empty(t, set.CurrentNames())

	got, err := set.IsSet(Name("A"))
	require.NoError(t, err)
	assert.False(t, got)

	// SetAll只触碰已定义位, 外来位不受影响
	set.SetAll()
	assert.Equal(t, uint64(0b1011), set.Value())

	// ClearAll连同外来位一并清除
	set.ClearAll()
	assert.Equal(t, uint64(0), set.Value())
}

func TestValueAccessors(t *testing.T) {
	def := permDefinition(t)
	set, err := NewWithValue(def, 0b101)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), set.Value())
	assert.Equal(t, Mask(0b101), set.RawMask())
	assert.Equal(t, 4, set.Capacity())
	assert.Same(t, def, set.Definition())
}
