package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live with zero dies", 0, true, false},
		{"live with one dies", 1, true, false},
		{"live with two survives", 2, true, true},
		{"live with three survives", 3, true, true},
		{"live with four dies", 4, true, false},
		{"live with eight dies", 8, true, false},
		{"dead with two stays dead", 2, false, false},
		{"dead with three is born", 3, false, true},
		{"dead with four stays dead", 4, false, false},
		{"dead with zero stays dead", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := IsUnderpopulated(n), n < 2; got != want {
			t.Errorf("IsUnderpopulated(%d) = %v, want %v", n, got, want)
		}
		if got, want := IsOverpopulated(n), n > 3; got != want {
			t.Errorf("IsOverpopulated(%d) = %v, want %v", n, got, want)
		}
		if CanReproduce(n, true) {
			t.Errorf("CanReproduce(%d, true) = true, live cells never reproduce", n)
		}
		if got, want := CanReproduce(n, false), n == 3; got != want {
			t.Errorf("CanReproduce(%d, false) = %v, want %v", n, got, want)
		}
	}
}
