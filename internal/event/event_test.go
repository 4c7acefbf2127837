package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

// unsubscriber drops itself on the first event it sees.
type unsubscriber struct {
	d     *Dispatcher
	calls int
}

func (u *unsubscriber) OnEvent(e Event) {
	u.calls++
	u.d.Unsubscribe(e.Type, u)
}

func TestDispatchDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	deaths := &recorder{}
	d.Subscribe(PlayerHit, hits)
	d.Subscribe(EntityDied, deaths)

	d.Dispatch(Event{Type: PlayerHit, Data: PlayerHitData{Damage: 10, Remaining: 90}})

	if len(hits.got) != 1 {
		t.Fatalf("Expected 1 PlayerHit event, got %d", len(hits.got))
	}
	data, ok := hits.got[0].Data.(PlayerHitData)
	if !ok || data.Damage != 10 || data.Remaining != 90 {
		t.Errorf("Unexpected payload %#v", hits.got[0].Data)
	}
	if len(deaths.got) != 0 {
		t.Errorf("Expected no EntityDied events, got %d", len(deaths.got))
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EntityRemoved, r)
	d.Subscribe(EntityRemoved, r)

	d.Dispatch(Event{Type: EntityRemoved})
	if len(r.got) != 1 {
		t.Errorf("Expected a single delivery, got %d", len(r.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerHit, a)
	d.Subscribe(PlayerHit, b)

	d.Unsubscribe(PlayerHit, a)
	d.Dispatch(Event{Type: PlayerHit})

	if len(a.got) != 0 {
		t.Errorf("Expected unsubscribed listener to receive nothing, got %d", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("Expected remaining listener to receive 1 event, got %d", len(b.got))
	}

	d.Unsubscribe(PlayerHit, b)
	d.Dispatch(Event{Type: PlayerHit})
	if len(b.got) != 1 {
		t.Errorf("Expected no delivery after removing all listeners, got %d", len(b.got))
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	r := &recorder{}
	d.Subscribe(EntityDied, u)
	d.Subscribe(EntityDied, r)

	d.Dispatch(Event{Type: EntityDied})
	d.Dispatch(Event{Type: EntityDied})

	if u.calls != 1 {
		t.Errorf("Expected self-unsubscribing listener to run once, got %d", u.calls)
	}
	if len(r.got) != 2 {
		t.Errorf("Expected other listener to see both events, got %d", len(r.got))
	}
}
