package tsv

import (
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/boxdox/bitflags"
)

func TestLoadDefinition(t *testing.T) {
	def, err := LoadDefinition("./test", "permission")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"READ", "WRITE", "EXECUTE"}
	if got := def.Names(); !slices.Equal(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
	if bit, _ := def.BitOf("EXECUTE"); bit != 2 {
		t.Errorf("EXECUTE bit = %d, want 2", bit)
	}
	if def.Capacity() != 4 {
		t.Errorf("capacity = %d, want 4", def.Capacity())
	}
}

func TestLoadDefinitionSparseBits(t *testing.T) {
	def, err := LoadDefinition("./test", "quest")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ACCEPTED", "ESCORT_DONE", "BOSS_DOWN", "REWARDED"}
	if got := def.Names(); !slices.Equal(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
	if def.MaxBit() != 8 {
		t.Errorf("max bit = %d, want 8", def.MaxBit())
	}
	if def.Capacity() != 16 {
		t.Errorf("capacity = %d, want 16", def.Capacity())
	}
}

func TestLoadRows(t *testing.T) {
	rows, err := LoadRows("./test", "permission")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1].Name != "WRITE" || rows[1].Bit != 1 || rows[1].Desc != "写权限" {
		t.Errorf("row 2 = %+v", rows[1])
	}
}

func TestLoadDefinitionErrors(t *testing.T) {
	_, err := LoadDefinition("./test/bad", "dupname")
	if !errors.Is(err, bitflags.ErrInvalidDefinition) {
		t.Errorf("dupname err = %v, want ErrInvalidDefinition", err)
	}

	_, err = LoadDefinition("./test", "nosuchtable")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing table err = %v, want os.ErrNotExist", err)
	}
}

func TestCatalog(t *testing.T) {
	cat, err := NewCatalog("./test")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"permission", "quest"}
	if got := cat.Tables(); !slices.Equal(got, want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
	if cat.Definition("nosuchtable") != nil {
		t.Error("unknown table should return nil")
	}

	def := cat.Definition("quest")
	if def == nil {
		t.Fatal("quest definition missing")
	}
	set, err := bitflags.New(def)
	if err != nil {
		t.Fatal(err)
	}
	set.MustSet(bitflags.Name("ACCEPTED")).MustSet(bitflags.Name("BOSS_DOWN"))
	if set.Value() != 0b10001 {
		t.Errorf("value = %#b, want 0b10001", set.Value())
	}

	// 热更后旧引用仍然可用, 新引用取到重载结果
	if err := cat.Reload(); err != nil {
		t.Fatal(err)
	}
	if cat.Definition("quest") == def {
		t.Error("reload should rebuild definitions")
	}
	if got := def.Names(); len(got) != 4 {
		t.Errorf("stale definition names = %v", got)
	}
}

func TestCatalogBadDir(t *testing.T) {
	if _, err := NewCatalog("./nosuchdir"); err == nil {
		t.Error("missing dir should fail")
	}
}
