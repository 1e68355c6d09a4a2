package store

import (
	"database/sql"
	"fmt"
	"strings"

	"routier/internal/model"
)

// ListProducts 获取全部产品，按名称排序
func (s *Store) ListProducts() ([]model.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, width_cm, height_cm, length_cm, created_at, updated_at
		FROM products ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// CreateProduct 新增产品
// 名称在大小写不敏感口径下唯一，重名由唯一索引拦截
func (s *Store) CreateProduct(p *model.Product) error {
	res, err := s.db.Exec(`
		INSERT INTO products (name, width_cm, height_cm, length_cm)
		VALUES (?, ?, ?, ?)`,
		p.Name, p.WidthCm, p.HeightCm, p.LengthCm)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("product name already exists: %s", p.Name)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}
	p.ID = id
	return nil
}

// UpdateProduct 按字段更新产品
func (s *Store) UpdateProduct(id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	setClauses := []string{}
	args := []interface{}{}
	for field, value := range updates {
		setClauses = append(setClauses, field+" = ?")
		args = append(args, value)
	}
	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = ?",
		strings.Join(setClauses, ", "))

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteProduct 删除产品
func (s *Store) DeleteProduct(id int64) error {
	if _, err := s.db.Exec("DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Snapshot 取一次目录快照（产品 + 车辆）
// 管线在一次请求内只使用这份快照，期间目录变更不影响运行
func (s *Store) Snapshot() (model.Snapshot, error) {
	products, err := s.ListProducts()
	if err != nil {
		return model.Snapshot{}, err
	}
	vehicles, err := s.ListVehicles()
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{Products: products, Vehicles: vehicles}, nil
}

func scanProductRows(rows *sql.Rows) ([]model.Product, error) {
	var results []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.WidthCm, &p.HeightCm, &p.LengthCm,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return results, nil
}
