package model

// Product 产品目录记录（按名称匹配，提供厘米尺寸）
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	WidthCm   float64 `json:"width_cm"`
	HeightCm  float64 `json:"height_cm"`
	LengthCm  float64 `json:"length_cm"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// Vehicle 车辆目录记录（米尺寸 + 可用容积百分比 0-100）
type Vehicle struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	LengthM         float64 `json:"length_m"`
	WidthM          float64 `json:"width_m"`
	HeightM         float64 `json:"height_m"`
	UsableVolumePct float64 `json:"usable_volume_percentage"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

// Snapshot 目录快照
// 每次优化请求开始时取一次，管线运行期间只读
type Snapshot struct {
	Products []Product `json:"products"`
	Vehicles []Vehicle `json:"vehicles"`
}
