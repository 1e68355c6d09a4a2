package pipeline

import (
	"testing"

	"routier/internal/model"
)

func TestBuildFleet_VolumeAndUsableVolume(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet([]model.Vehicle{
		{ID: 3, Name: "Camion 7m", LengthM: 7, WidthM: 4, HeightM: 2, UsableVolumePct: 85},
	}, DefaultUsableVolumePct)

	if len(fleet) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(fleet))
	}
	e := fleet[0]
	if e.TruckID != 3 || e.TruckName != "Camion 7m" {
		t.Fatalf("identity mismatch: %+v", e)
	}
	if e.TotalVolume != 56 {
		t.Fatalf("raw volume: want 56, got %v", e.TotalVolume)
	}
	if e.UsableVolume != 47.6 {
		t.Fatalf("usable volume: want 47.6, got %v", e.UsableVolume)
	}
	if e.MaxVolume != e.UsableVolume {
		t.Fatalf("maxVolume must mirror usableVolume")
	}
	if e.Dimensions.Length != 7 || e.Dimensions.Width != 4 || e.Dimensions.Height != 2 {
		t.Fatalf("dimensions mismatch: %+v", e.Dimensions)
	}
}

func TestBuildFleet_DefaultPercentage(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet([]model.Vehicle{
		{ID: 1, Name: "Sans pct", LengthM: 2, WidthM: 2, HeightM: 2},
	}, DefaultUsableVolumePct)

	if fleet[0].UsableVolume != 8*0.85 {
		t.Fatalf("default 85%%: want %v, got %v", 8*0.85, fleet[0].UsableVolume)
	}
}

// 尺寸为零的车辆产出零体积条目而不是被剔除，这是既定行为
func TestBuildFleet_ZeroDimensionYieldsZeroVolumeEntry(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet([]model.Vehicle{
		{ID: 9, Name: "Dimensions manquantes", LengthM: 0, WidthM: 4, HeightM: 2},
	}, DefaultUsableVolumePct)

	if len(fleet) != 1 {
		t.Fatalf("zero-dimension vehicle must still produce an entry")
	}
	if fleet[0].TotalVolume != 0 || fleet[0].UsableVolume != 0 {
		t.Fatalf("expected zero volumes, got %+v", fleet[0])
	}
}

func TestBuildFleet_PreservesSelectionOrder(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet([]model.Vehicle{
		{ID: 5, Name: "B"},
		{ID: 2, Name: "A"},
		{ID: 8, Name: "C"},
	}, DefaultUsableVolumePct)

	want := []int64{5, 2, 8}
	for i, id := range want {
		if fleet[i].TruckID != id {
			t.Fatalf("selection order not preserved: %+v", fleet)
		}
	}
}
