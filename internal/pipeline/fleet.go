package pipeline

import "routier/internal/model"

// DefaultUsableVolumePct 目录未给出可用容积百分比时的默认值
const DefaultUsableVolumePct = 85

// BuildFleet 把选定车辆转换为运力描述，保持选择顺序
// 体积 = 长×宽×高；可用体积 = 体积 × 百分比/100。
// 尺寸为零或缺失的车辆产出零体积条目，不做拒绝
func BuildFleet(vehicles []model.Vehicle, defaultPct float64) []model.FleetEntry {
	if defaultPct <= 0 {
		defaultPct = DefaultUsableVolumePct
	}

	fleet := make([]model.FleetEntry, 0, len(vehicles))
	for _, v := range vehicles {
		pct := v.UsableVolumePct
		if pct <= 0 {
			pct = defaultPct
		}

		total := v.LengthM * v.WidthM * v.HeightM
		usable := total * pct / 100

		fleet = append(fleet, model.FleetEntry{
			TruckID:   v.ID,
			TruckName: v.Name,
			Dimensions: model.VehicleDimensions{
				Length: v.LengthM,
				Width:  v.WidthM,
				Height: v.HeightM,
			},
			TotalVolume:  total,
			UsableVolume: usable,
			MaxVolume:    usable,
		})
	}
	return fleet
}
