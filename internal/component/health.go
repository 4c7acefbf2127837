// internal/component/health.go
package component

import (
	"nightmare-descent/internal/config"
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/event"
	"nightmare-descent/internal/utils"
)

// Health хранит здоровье в [0, max] и время неуязвимости после удара.
type Health struct {
	entity.Base
	current       float64
	max           float64
	invincibility float64
	dispatcher    *event.Dispatcher
}

// NewHealth создает полное здоровье с заданным максимумом.
func NewHealth(max float64) *Health {
	if max < 0 {
		max = 0
	}
	return &Health{current: max, max: max}
}

// SetDispatcher включает событие EntityDied.
func (h *Health) SetDispatcher(d *event.Dispatcher) {
	h.dispatcher = d
}

// TakeDamage вычитает amount, не опускаясь ниже нуля. Отрицательный amount игнорируется.
func (h *Health) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	wasDead := h.IsDead()
	h.current = utils.Clamp(h.current-amount, 0, h.max)
	if !wasDead && h.IsDead() {
		h.notifyDeath()
	}
}

// Heal добавляет amount, не выше максимума. Отрицательный amount игнорируется.
func (h *Health) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	h.current = utils.Clamp(h.current+amount, 0, h.max)
}

// IsDead reports whether health has run out.
func (h *Health) IsDead() bool {
	return h.current <= 0
}

func (h *Health) Health() float64 {
	return h.current
}

// SetHealth задает текущее значение в пределах [0, max].
func (h *Health) SetHealth(value float64) {
	wasDead := h.IsDead()
	h.current = utils.Clamp(value, 0, h.max)
	if !wasDead && h.IsDead() {
		h.notifyDeath()
	}
}

func (h *Health) MaxHealth() float64 {
	return h.max
}

// SetMaxHealth меняет максимум и при необходимости опускает текущее значение.
func (h *Health) SetMaxHealth(max float64) {
	if max < 0 {
		max = 0
	}
	h.max = max
	h.SetHealth(h.current)
}

// StartInvincibility делает владельца неуязвимым к контактному урону на d секунд.
func (h *Health) StartInvincibility(d float64) {
	if d > h.invincibility {
		h.invincibility = d
	}
}

func (h *Health) IsInvincible() bool {
	return h.invincibility > 0
}

// Invincibility: оставшаяся неуязвимость в секундах.
func (h *Health) Invincibility() float64 {
	return h.invincibility
}

// Update отсчитывает неуязвимость игрока. Пока она идет, спрайт мигает,
// а в тике, где она закончилась, спрайт снова становится непрозрачным.
func (h *Health) Update(deltaTime float64) {
	owner := h.Owner()
	if owner == nil || owner.Type() != entity.TypePlayer {
		return
	}
	sprite, hasSprite := entity.Get[*AnimatedSprite](owner)

	if h.invincibility > 0 {
		h.invincibility -= deltaTime
		if hasSprite {
			sprite.Blink(config.BlinkInterval, deltaTime)
		}
	}
	if h.invincibility < 0 {
		h.invincibility = 0
	}
	if hasSprite && h.invincibility <= 0 && sprite.Alpha() != 255 {
		sprite.StopBlink()
	}
}

func (h *Health) notifyDeath() {
	if h.dispatcher == nil {
		return
	}
	h.dispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: h.Owner()})
}
