package engine

import "testing"

func TestTrendFirstReadingInitializesDirection(t *testing.T) {
	e := New(WithSeed(1))

	got := e.applyTrend("s1", 42)
	if got != 42 {
		t.Fatalf("first reading adjusted: %v", got)
	}
	st := e.state.get("s1")
	if st.trend != 1 && st.trend != -1 {
		t.Fatalf("direction not initialized: %d", st.trend)
	}
}

func TestTrendReinforcesAgreeingDelta(t *testing.T) {
	e := New(WithSeed(1))
	st := e.state.get("s1")
	st.lastValue = 10
	st.hasLast = true
	st.trend = 1

	got := e.applyTrend("s1", 12)
	boost := got - 12
	if boost < 0.1 || boost > 0.3 {
		t.Fatalf("momentum boost %v outside [0.1,0.3]", boost)
	}
	if st.trend != 1 {
		t.Fatalf("direction re-rolled on agreement")
	}
}

func TestTrendRerollsOnContradiction(t *testing.T) {
	e := New(WithSeed(1))

	rerolled := false
	for i := 0; i < 50; i++ {
		st := e.state.get("s1")
		st.lastValue = 10
		st.hasLast = true
		st.trend = 1

		// Falling value against a +1 direction: no adjustment this call,
		// direction re-rolled for the next.
		if got := e.applyTrend("s1", 8); got != 8 {
			t.Fatalf("value adjusted on reversal: %v", got)
		}
		if st.trend == -1 {
			rerolled = true
		}
	}
	if !rerolled {
		t.Fatalf("direction never re-rolled across 50 contradictions")
	}
}

func TestTrendNegativeDirection(t *testing.T) {
	e := New(WithSeed(1))
	st := e.state.get("s2")
	st.lastValue = 10
	st.hasLast = true
	st.trend = -1

	got := e.applyTrend("s2", 8)
	drop := 8 - got
	if drop < 0.1 || drop > 0.3 {
		t.Fatalf("downward momentum %v outside [0.1,0.3]", drop)
	}
}
