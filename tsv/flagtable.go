// Package tsv 从tsv配置表读取位标志定义；
//
// 设计特点:
//  1. 表格式与策划导出的tsv配置保持一致, 4行表头+数据行;
//  2. 数据行的先后顺序即标志的声明顺序;
//  3. Catalog支持整目录加载和运行期热更;
package tsv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/boxdox/bitflags"
)

/* tsv标志定义表格式
第1行表头, 字段名, 必须含id/name/bit列, desc列可选
第2行, 字段中文名
第3行, 字段注释
第4行开始, 数据行
*/

// FlagRow 表示标志定义表的单个数据行
type FlagRow struct {
	Id   int32  // 行编号, 表内唯一
	Name string // 标志名
	Bit  uint   // 位序
	Desc string // 描述, 仅供查阅
}

// LoadDefinition 读取dir目录下的table.tsv并构建位标志定义；
// 行顺序决定标志的声明顺序, 名字和位序的合法性检查由定义层完成。
func LoadDefinition(dir, table string) (*bitflags.Definition, error) {
	rows, err := LoadRows(dir, table)
	if err != nil {
		return nil, err
	}

	entries := make([]bitflags.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, bitflags.Entry{Name: row.Name, Bit: row.Bit})
	}
	def, err := bitflags.NewDefinition(entries...)
	if err != nil {
		return nil, fmt.Errorf("tsv %s: %w", table, err)
	}
	return def, nil
}

// LoadRows 读取dir目录下的table.tsv的全部数据行, 保持文件内顺序；
// 需要描述等附加列时直接使用本函数。
func LoadRows(dir, table string) ([]FlagRow, error) {
	file, err := os.Open(filepath.Join(dir, table+".tsv"))
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	return parseRows(table, file)
}

func parseRows(table string, file *os.File) ([]FlagRow, error) {
	scanner := bufio.NewScanner(file)
	var (
		rowindex int
		fields   []string
		rows     []FlagRow
		seen     = make(map[int32]int) // id -> 行号
	)

	for scanner.Scan() {
		rowindex++
		row := strings.Split(strings.TrimSpace(scanner.Text()), "\t")

		// 处理表头
		if rowindex == 1 {
			fields = row
			for _, need := range []string{"id", "name", "bit"} {
				if columnIndex(fields, need) < 0 {
					return nil, fmt.Errorf("tsv %s missing %s field", table, need)
				}
			}
			continue
		}
		if rowindex <= 3 {
			continue
		}
		// 处理数据
		r, err := parseColumns(fields, row)
		if err != nil {
			return nil, fmt.Errorf("parse row %d error %w", rowindex, err)
		}
		if first, exists := seen[r.Id]; exists {
			return nil, fmt.Errorf("row %d id %d: already exists at row %d", rowindex, r.Id, first)
		}
		seen[r.Id] = rowindex
		rows = append(rows, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file error %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tsv %s has no data row", table)
	}
	return rows, nil
}

// 解析列
func parseColumns(fields, values []string) (FlagRow, error) {
	if len(fields) != len(values) {
		for i := len(values); i < len(fields); i++ {
			values = append(values, "NULL")
		}
	}

	var r FlagRow
	for idx, field := range fields {
		str := values[idx]
		// NULL值保持字段零值
		if strings.ToLower(str) == "null" {
			continue
		}
		switch strings.ToLower(field) {
		case "id":
			id, err := strconv.ParseInt(str, 10, 32)
			if err != nil {
				return r, fmt.Errorf("id %q parse error: %w", str, err)
			}
			r.Id = int32(id)
		case "name":
			r.Name = str
		case "bit":
			bit, err := strconv.ParseUint(str, 10, 32)
			if err != nil {
				return r, fmt.Errorf("bit %q parse error: %w", str, err)
			}
			r.Bit = uint(bit)
		case "desc":
			r.Desc = str
		}
	}
	return r, nil
}

// columnIndex 返回指定字段所在列的索引, 不存在时返回-1
func columnIndex(fields []string, name string) int {
	for idx, field := range fields {
		if strings.ToLower(field) == name {
			return idx
		}
	}
	return -1
}
