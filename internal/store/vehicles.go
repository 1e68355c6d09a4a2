package store

import (
	"database/sql"
	"fmt"
	"strings"

	"routier/internal/model"
)

// ListVehicles 获取全部车辆，按创建时间排序
func (s *Store) ListVehicles() ([]model.Vehicle, error) {
	rows, err := s.db.Query(`
		SELECT id, name, length_m, width_m, height_m, usable_volume_percentage,
		       created_at, updated_at
		FROM vehicles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicleRows(rows)
}

// GetVehiclesByIDs 按给定 ID 列表获取车辆，结果保持列表顺序
// 未知 ID 直接忽略（前端的选择可能落后于目录变更）
func (s *Store) GetVehiclesByIDs(ids []int64) ([]model.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, name, length_m, width_m, height_m, usable_volume_percentage,
		       created_at, updated_at
		FROM vehicles WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	fetched, err := scanVehicleRows(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Vehicle, len(fetched))
	for _, v := range fetched {
		byID[v.ID] = v
	}

	ordered := make([]model.Vehicle, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

// CreateVehicle 新增车辆
func (s *Store) CreateVehicle(v *model.Vehicle) error {
	if v.UsableVolumePct <= 0 {
		v.UsableVolumePct = 85
	}
	res, err := s.db.Exec(`
		INSERT INTO vehicles (name, length_m, width_m, height_m, usable_volume_percentage)
		VALUES (?, ?, ?, ?, ?)`,
		v.Name, v.LengthM, v.WidthM, v.HeightM, v.UsableVolumePct)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}
	v.ID = id
	return nil
}

// UpdateVehicle 按字段更新车辆
func (s *Store) UpdateVehicle(id int64, updates map[string]interface{}) error {
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

	query := fmt.Sprintf("UPDATE vehicles SET %s WHERE id = ?",
		strings.Join(setClauses, ", "))

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// DeleteVehicle 删除车辆
func (s *Store) DeleteVehicle(id int64) error {
	if _, err := s.db.Exec("DELETE FROM vehicles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func scanVehicleRows(rows *sql.Rows) ([]model.Vehicle, error) {
	var results []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(
			&v.ID, &v.Name, &v.LengthM, &v.WidthM, &v.HeightM, &v.UsableVolumePct,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return results, nil
}
