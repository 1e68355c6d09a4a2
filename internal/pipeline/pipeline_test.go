package pipeline

import (
	"testing"

	"routier/internal/model"
)

const scenarioOrders = `[{
	"id": 1,
	"billing": {"first_name": "Nadia", "city": "Alger"},
	"line_items": [{"name": "TRK 251", "quantity": 2}],
	"shipping_lines": [{"method_title": "X"}]
}]`

func scenarioSnapshot(withProduct bool) model.Snapshot {
	snap := model.Snapshot{
		Vehicles: []model.Vehicle{
			{ID: 1, Name: "Camion 7m", LengthM: 7, WidthM: 4, HeightM: 2, UsableVolumePct: 85},
		},
	}
	if withProduct {
		snap.Products = []model.Product{
			{ID: 1, Name: "TRK 251", WidthCm: 220, HeightCm: 125, LengthCm: 80},
		}
	}
	return snap
}

func TestRun_EnrichedEndToEnd(t *testing.T) {
	t.Parallel()

	snap := scenarioSnapshot(true)
	result, err := Run(snap, scenarioOrders, snap.Vehicles, true, DefaultUsableVolumePct)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Blocked() {
		t.Fatalf("unexpected gate: %v", result.Report.Unresolved)
	}
	if result.Payload == nil {
		t.Fatalf("expected payload")
	}

	if len(result.Payload.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(result.Payload.Orders))
	}
	li := result.Payload.Orders[0].LineItems[0]
	if li.WidthCm == nil || *li.WidthCm != 220 {
		t.Fatalf("width_cm: %+v", li)
	}
	if li.HeightCm == nil || *li.HeightCm != 125 {
		t.Fatalf("height_cm: %+v", li)
	}
	if li.LengthCm == nil || *li.LengthCm != 80 {
		t.Fatalf("length_cm: %+v", li)
	}

	if len(result.Payload.Fleet) != 1 || result.Payload.Fleet[0].UsableVolume != 47.6 {
		t.Fatalf("fleet mismatch: %+v", result.Payload.Fleet)
	}
	if !result.Payload.AllowOrderSplitting {
		t.Fatalf("allowOrderSplitting flag lost")
	}
}

func TestRun_UnresolvedBlocksBeforePayload(t *testing.T) {
	t.Parallel()

	snap := scenarioSnapshot(false)
	result, err := Run(snap, scenarioOrders, snap.Vehicles, true, DefaultUsableVolumePct)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Blocked() {
		t.Fatalf("expected gate for unmatched product")
	}
	if len(result.Report.Unresolved) != 1 || result.Report.Unresolved[0] != "TRK 251" {
		t.Fatalf("unresolved set: %v", result.Report.Unresolved)
	}
	if result.Payload != nil {
		t.Fatalf("payload must not be built when blocked")
	}
}

func TestRun_MalformedInputIsTerminal(t *testing.T) {
	t.Parallel()

	snap := scenarioSnapshot(true)
	if _, err := Run(snap, `{"orders": [`, snap.Vehicles, false, DefaultUsableVolumePct); err == nil {
		t.Fatalf("expected terminal error")
	}
}

func TestRun_ReportAccountsForSkippedAndUnusable(t *testing.T) {
	t.Parallel()

	orders := `[
		{"id": 1, "line_items": [{"name": "TRK 251", "quantity": 1}], "billing": {}, "shipping_lines": []},
		{"status": "no id"},
		{"id": 2, "status": "unrecognized shape"}
	]`
	snap := scenarioSnapshot(true)
	result, err := Run(snap, orders, snap.Vehicles, false, DefaultUsableVolumePct)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Report.TotalRecords != 3 {
		t.Fatalf("total records: %d", result.Report.TotalRecords)
	}
	if len(result.Report.Skipped) != 1 {
		t.Fatalf("skipped: %+v", result.Report.Skipped)
	}
	if len(result.Report.UnusableGroups) != 1 || result.Report.UnusableGroups[0] != "2" {
		t.Fatalf("unusable groups: %v", result.Report.UnusableGroups)
	}
	if result.Report.OrderCount != 1 {
		t.Fatalf("order count: %d", result.Report.OrderCount)
	}
}
