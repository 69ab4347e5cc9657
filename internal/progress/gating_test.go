package progress

import "testing"

func TestStateForSequence(t *testing.T) {
	const modules = 13
	for k := 0; k <= modules; k++ {
		for i := 1; i <= modules; i++ {
			got := StateFor(i, k)
			var want State
			switch {
			case k >= i:
				want = StateCompleted
			case i == k+1:
				want = StateUnlocked
			default:
				want = StateLocked
			}
			if got != want {
				t.Errorf("k=%d module=%d: state=%s, want %s", k, i, got, want)
			}
		}
	}
}

func TestModuleOneNeverLocked(t *testing.T) {
	for k := 0; k <= 13; k++ {
		if StateFor(1, k) == StateLocked {
			t.Fatalf("module 1 locked at k=%d", k)
		}
	}
}
