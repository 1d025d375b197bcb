package types

import "testing"

func TestResultConstructors(t *testing.T) {
	t.Run("Ok", func(t *testing.T) {
		if r := Ok(); !r.IsNormal() {
			t.Error("Ok() should create normal result")
		}
	})

	t.Run("Return", func(t *testing.T) {
		if r := Return(); !r.IsReturn() {
			t.Error("Return() should create return result")
		}
	})

	t.Run("Jump", func(t *testing.T) {
		r := Jump("100", 4)
		if !r.IsJump() {
			t.Fatal("Jump() should create jump result")
		}
		if r.Label != "100" || r.Target != 4 {
			t.Errorf("Jump() = %+v, want label 100 target 4", r)
		}
	})

	t.Run("Halt", func(t *testing.T) {
		if r := Halt(); !r.IsHalt() {
			t.Error("Halt() should create halt result")
		}
	})
}

func TestResultPredicates(t *testing.T) {
	tests := []struct {
		name       string
		result     Result
		isNormal   bool
		isExit     bool
		isContinue bool
		isLoop     bool
	}{
		{"normal", Ok(), true, false, false, false},
		{"exit", Exit(), false, true, false, true},
		{"continue", Continue(), false, false, true, true},
		{"return", Return(), false, false, false, false},
		{"halt", Halt(), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsNormal(); got != tt.isNormal {
				t.Errorf("IsNormal() = %v, want %v", got, tt.isNormal)
			}
			if got := tt.result.IsExit(); got != tt.isExit {
				t.Errorf("IsExit() = %v, want %v", got, tt.isExit)
			}
			if got := tt.result.IsContinue(); got != tt.isContinue {
				t.Errorf("IsContinue() = %v, want %v", got, tt.isContinue)
			}
			if got := tt.result.IsLoopSignal(); got != tt.isLoop {
				t.Errorf("IsLoopSignal() = %v, want %v", got, tt.isLoop)
			}
		})
	}
}
