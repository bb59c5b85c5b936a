package observe

import "testing"

func TestNotifier_NotifiesInSubscriptionOrder(t *testing.T) {
	var n Notifier
	var order []string

	n.Subscribe(func() { order = append(order, "a") })
	n.Subscribe(func() { order = append(order, "b") })
	n.Subscribe(func() { order = append(order, "c") })

	n.Notify()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestNotifier_Cancel(t *testing.T) {
	var n Notifier
	calls := 0

	cancel := n.Subscribe(func() { calls++ })
	n.Notify()
	cancel()
	cancel()
	n.Notify()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n.Len() != 0 {
		t.Errorf("Len() = %d, want 0", n.Len())
	}
}

func TestNotifier_SubscribeDuringNotify(t *testing.T) {
	var n Notifier
	late := 0

	n.Subscribe(func() {
		n.Subscribe(func() { late++ })
	})

	n.Notify()
	if late != 0 {
		t.Fatalf("observer added during Notify ran in the same round")
	}

	n.Notify()
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestValue_SetNotifiesSynchronously(t *testing.T) {
	v := NewValue(false)
	var seen []bool

	v.Subscribe(func() { seen = append(seen, v.Get()) })

	v.Set(true)
	if len(seen) != 1 || !seen[0] {
		t.Fatalf("observer did not see new value within Set: %v", seen)
	}

	v.Set(true)
	if len(seen) != 2 {
		t.Errorf("Set with unchanged value should still notify, got %d notifications", len(seen))
	}
}

func TestValue_GetZero(t *testing.T) {
	var v Value[string]
	if got := v.Get(); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}
