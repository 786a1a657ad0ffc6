package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestTruckStatus(t *testing.T) {
	tests := []struct {
		name                string
		currentMeterReading int64
		maintenanceInterval int64
		lastMaintenanceKm   int64
		wantRemaining       int64
		wantStatus          MaintenanceStatus
	}{
		{
			name:                "plenty of distance left",
			currentMeterReading: 50000,
			maintenanceInterval: 10000,
			lastMaintenanceKm:   45000,
			wantRemaining:       5000,
			wantStatus:          MaintenanceStatusOK,
		},
		{
			name:                "due soon at the threshold",
			currentMeterReading: 54500,
			maintenanceInterval: 10000,
			lastMaintenanceKm:   45000,
			wantRemaining:       500,
			wantStatus:          MaintenanceStatusDueSoon,
		},
		{
			name:                "overdue exactly at the due point",
			currentMeterReading: 55000,
			maintenanceInterval: 10000,
			lastMaintenanceKm:   45000,
			wantRemaining:       0,
			wantStatus:          MaintenanceStatusOverdue,
		},
		{
			name:                "far past the due point",
			currentMeterReading: 60000,
			maintenanceInterval: 10000,
			lastMaintenanceKm:   45000,
			wantRemaining:       -5000,
			wantStatus:          MaintenanceStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truck := NewTruck(uuid.New(), "Volvo FH", "TRK-01", []string{"Kamal"},
				tt.currentMeterReading, tt.maintenanceInterval, tt.lastMaintenanceKm)

			if got := truck.KmsRemaining(); got != tt.wantRemaining {
				t.Errorf("KmsRemaining() = %d, want %d", got, tt.wantRemaining)
			}
			if got := truck.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %s, want %s", got, tt.wantStatus)
			}
		})
	}
}
