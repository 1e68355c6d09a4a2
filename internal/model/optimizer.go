package model

// VehicleDimensions 车厢内部尺寸（米）
type VehicleDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FleetEntry 单辆车的运力描述
// totalVolume = 长×宽×高；usableVolume = totalVolume × 可用百分比
// maxVolume 与 usableVolume 相同，下游服务仍读取旧字段名
type FleetEntry struct {
	TruckID      int64             `json:"truckId"`
	TruckName    string            `json:"truckName"`
	Dimensions   VehicleDimensions `json:"dimensions"`
	TotalVolume  float64           `json:"totalVolume"`
	UsableVolume float64           `json:"usableVolume"`
	MaxVolume    float64           `json:"maxVolume"`
}

// OptimizeRequest 发送给外部路线优化服务的请求体
type OptimizeRequest struct {
	Orders              []*CanonicalOrder `json:"orders"`
	Fleet               []FleetEntry      `json:"fleet"`
	AllowOrderSplitting bool              `json:"allowOrderSplitting"`
}
