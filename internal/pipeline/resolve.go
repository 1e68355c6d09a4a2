package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"routier/internal/model"
)

// ErrCatalogConflict 产品目录中存在仅大小写不同的重名
var ErrCatalogConflict = errors.New("产品目录存在重名")

// ProductIndex 产品目录索引，键为大小写折叠后的产品名
type ProductIndex map[string]model.Product

// NewProductIndex 构建目录索引，每次管线运行构建一次
// 目录里出现仅大小写不同的重名是目录数据错误，直接报错而不是静默取其一
func NewProductIndex(products []model.Product) (ProductIndex, error) {
	index := make(ProductIndex, len(products))
	for _, p := range products {
		key := foldName(p.Name)
		if key == "" {
			continue
		}
		if dup, exists := index[key]; exists {
			return nil, fmt.Errorf("%w（仅大小写不同）: %q / %q", ErrCatalogConflict, dup.Name, p.Name)
		}
		index[key] = p
	}
	return index, nil
}

// Resolve 用目录尺寸补全订单行项目，返回新订单，原订单不变
// 名称命中时目录为准：行项目上已有的尺寸会被目录值覆盖；
// 未命中时行项目原样保留。重复执行结果不变
func (ix ProductIndex) Resolve(o *model.CanonicalOrder) *model.CanonicalOrder {
	out := o.Clone()
	for i := range out.LineItems {
		li := &out.LineItems[i]
		if li.Name == "" {
			continue
		}
		p, ok := ix[foldName(li.Name)]
		if !ok {
			continue
		}
		w, h, l := p.WidthCm, p.HeightCm, p.LengthCm
		li.WidthCm = &w
		li.HeightCm = &h
		li.LengthCm = &l
	}
	return out
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
