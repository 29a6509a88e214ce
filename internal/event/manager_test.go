package event

import "testing"

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var order []int
	m.Subscribe(TypeEvaluated, func(Event) bool { order = append(order, 1); return false })
	m.Subscribe(TypeEvaluated, func(Event) bool { order = append(order, 2); return false })
	m.Subscribe(TypeAppQuit, func(Event) bool { order = append(order, 99); return false })

	m.Dispatch(TypeEvaluated, EvaluatedData{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", order)
	}
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeKeyPressed, func(Event) bool { calls++; return true })
	m.Subscribe(TypeKeyPressed, func(Event) bool { calls++; return false })

	m.Dispatch(TypeKeyPressed, KeyPressedData{Label: "7"})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDispatchCarriesData(t *testing.T) {
	m := NewManager()
	var got string
	m.Subscribe(TypeThemeChanged, func(e Event) bool {
		got = e.Data.(ThemeChangedData).Name
		return false
	})
	m.Dispatch(TypeThemeChanged, ThemeChangedData{Name: "Calc Light"})
	if got != "Calc Light" {
		t.Errorf("theme name = %q", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	calls := 0
	sub := m.Subscribe(TypeModeChanged, func(Event) bool { calls++; return false })
	keep := m.Subscribe(TypeModeChanged, func(Event) bool { return false })

	m.Unsubscribe(sub)
	m.Dispatch(TypeModeChanged, ModeChangedData{From: "BASIC", To: "SCI"})

	if calls != 0 {
		t.Errorf("unsubscribed handler called %d times", calls)
	}
	if n := m.HandlerCount(TypeModeChanged); n != 1 {
		t.Errorf("HandlerCount = %d, want 1", n)
	}

	m.Unsubscribe(keep)
	m.Unsubscribe(keep) // Unknown subscriptions are ignored
	if n := m.HandlerCount(TypeModeChanged); n != 0 {
		t.Errorf("HandlerCount = %d, want 0", n)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	var sub Subscription
	calls := 0
	sub = m.Subscribe(TypeAppReady, func(Event) bool {
		calls++
		m.Unsubscribe(sub)
		return false
	})
	m.Dispatch(TypeAppReady, AppReadyData{})
	m.Dispatch(TypeAppReady, AppReadyData{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTypeString(t *testing.T) {
	if TypeEvaluated.String() != "Evaluated" {
		t.Errorf("TypeEvaluated.String() = %q", TypeEvaluated.String())
	}
	if Type(1000).String() != "Unknown" {
		t.Errorf("unknown type string = %q", Type(1000).String())
	}
}
