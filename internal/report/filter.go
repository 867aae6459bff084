// Package report 由已取回的集合计算派生视图：表格筛选与看板统计。
// 全部是纯函数，不访问存储，也不会失败。
package report

import (
	"strings"

	"asset-inventory/internal/domain"
)

// AssetFilter nil 表示"不限制"，与零值区分
type AssetFilter struct {
	LocationCode *int
	Status       *domain.AssetStatus
	Inventoried  *bool
	Search       string
}

func (f AssetFilter) match(a domain.Asset) bool {
	if f.LocationCode != nil && a.LocationCode != *f.LocationCode {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.Inventoried != nil && a.Inventoried != *f.Inventoried {
		return false
	}
	// 描述忽略大小写；编码按原样子串匹配
	return strings.Contains(strings.ToLower(a.Description), strings.ToLower(f.Search)) ||
		strings.Contains(a.Code, f.Search)
}

// FilterAssets 保持输入顺序
func FilterAssets(assets []domain.Asset, f AssetFilter) []domain.Asset {
	out := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if f.match(a) {
			out = append(out, a)
		}
	}
	return out
}
