package tsv

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/atomic"

	"github.com/boxdox/bitflags"
	"github.com/boxdox/bitflags/xlog"
)

// Catalog 管理一个目录下的全部标志定义表；
//
// 使用场景:
//  1. 服务启动时一次性加载目录下所有表;
//  2. 配置热更时调用Reload, 任一表解析失败则整体保留旧数据;
//
// 注意事项:
//  1. 读取无锁, Reload期间按表名取定义始终可用;
type Catalog struct {
	dir  string
	defs atomic.Pointer[map[string]*bitflags.Definition]
}

// NewCatalog 加载dir目录下所有tsv标志定义表；
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload 重新读取目录下的全部表；
// 先解析到临时map, 全部成功后原子替换, 失败时现有数据保持不变。
func (c *Catalog) Reload() error {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.tsv"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no tsv table under %s", c.dir)
	}

	defs := make(map[string]*bitflags.Definition, len(matches))
	for _, path := range matches {
		table := strings.TrimSuffix(filepath.Base(path), ".tsv")
		def, err := LoadDefinition(c.dir, table)
		if err != nil {
			xlog.Errorf("load flag table %s failed: %v", table, err)
			return err
		}
		defs[table] = def
	}

	c.defs.Store(&defs)
	xlog.Infof("flag tables loaded: %d tables under %s", len(defs), c.dir)
	return nil
}

// Definition 按表名取出标志定义, 未加载时返回nil；
func (c *Catalog) Definition(table string) *bitflags.Definition {
	defs := c.defs.Load()
	if defs == nil {
		return nil
	}
	return (*defs)[table]
}

// Tables 返回已加载的表名, 按字典序排列；
func (c *Catalog) Tables() []string {
	defs := c.defs.Load()
	if defs == nil {
		return nil
	}
	names := make([]string, 0, len(*defs))
	for name := range *defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
