package utils

import "testing"

func TestCalculateNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  bool
	}{
		{"one night", "01/03/2025", "02/03/2025", 1, false},
		{"one week", "01/03/2025", "08/03/2025", 7, false},
		{"across month boundary", "28/02/2025", "03/03/2025", 3, false},
		{"same day", "01/03/2025", "01/03/2025", 0, true},
		{"checkout before checkin", "05/03/2025", "01/03/2025", 0, true},
		{"bad checkin format", "2025-03-01", "02/03/2025", 0, true},
		{"bad checkout format", "01/03/2025", "03-02", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateNights(tt.checkIn, tt.checkOut)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateNights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CalculateNights() = %d, muốn %d", got, tt.want)
			}
		})
	}
}
