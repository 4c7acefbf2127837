// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event: событие и его данные
type Event struct {
	Type EventType
	Data interface{}
}

// Listener: подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher: синхронный диспетчер событий. Всё происходит в игровом цикле,
// поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe: подписка на событие. Повторная подписка того же слушателя игнорируется.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	for _, l := range d.listeners[eventType] {
		if l == listener {
			return
		}
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe: отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
	if len(d.listeners[eventType]) == 0 {
		delete(d.listeners, eventType)
	}
}

// Dispatch: отправка события подписчикам. Слушатель может отписаться прямо
// в OnEvent: рассылка идёт по снимку списка.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
