// internal/component/enemy_attack.go
package component

import (
	"nightmare-descent/internal/config"
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/event"
	"nightmare-descent/internal/types"
)

// EnemyAttack наносит урон цели, когда коллайдер владельца начинает касаться
// коллайдера цели. Урон один раз за контакт: пока касание длится, урона нет,
// атака снова взводится после того, как коллайдеры разошлись.
type EnemyAttack struct {
	entity.Base
	collisionDamage float64
	invincibility   float64
	knockback       float64
	target          *entity.GameObject
	touching        bool
	dispatcher      *event.Dispatcher
}

func NewEnemyAttack(damage float64) *EnemyAttack {
	return &EnemyAttack{
		collisionDamage: damage,
		invincibility:   config.InvincibilityDuration,
		knockback:       config.KnockbackDistance,
	}
}

func (a *EnemyAttack) SetCollisionDamage(damage float64) {
	a.collisionDamage = damage
}

func (a *EnemyAttack) CollisionDamage() float64 {
	return a.collisionDamage
}

// SetInvincibilityDuration: сколько секунд цель неуязвима после удара.
func (a *EnemyAttack) SetInvincibilityDuration(seconds float64) {
	a.invincibility = seconds
}

// SetKnockback: на сколько пикселей владелец отлетает от цели при контакте.
func (a *EnemyAttack) SetKnockback(distance float64) {
	a.knockback = distance
}

// SetTarget задает объект, чье Health получает урон (обычно игрок).
func (a *EnemyAttack) SetTarget(target *entity.GameObject) {
	a.target = target
	a.touching = false
}

func (a *EnemyAttack) SetDispatcher(d *event.Dispatcher) {
	a.dispatcher = d
}

// IsColliding runs the overlap test between the two colliders.
func (a *EnemyAttack) IsColliding(playerCollider, enemyCollider *SquareCollider) bool {
	if playerCollider == nil || enemyCollider == nil {
		return false
	}
	return enemyCollider.Intersects(playerCollider)
}

// InflictCollisionDamage наносит урон Health владельца коллайдера игрока
// в начале нового контакта и сообщает, был ли урон. Контакт, начавшийся
// во время неуязвимости, урона не наносит.
func (a *EnemyAttack) InflictCollisionDamage(playerCollider, enemyCollider *SquareCollider) bool {
	if !a.IsColliding(playerCollider, enemyCollider) {
		a.touching = false
		return false
	}
	if a.touching {
		return false
	}
	a.touching = true

	player := playerCollider.Owner()
	a.knockBack(player, enemyCollider.Owner())

	health, ok := entity.Get[*Health](player)
	if !ok || health.IsDead() || health.IsInvincible() {
		return false
	}
	health.TakeDamage(a.collisionDamage)
	health.StartInvincibility(a.invincibility)

	if a.dispatcher != nil {
		a.dispatcher.Dispatch(event.Event{
			Type: event.PlayerHit,
			Data: event.PlayerHitData{Damage: a.collisionDamage, Remaining: health.Health()},
		})
	}
	return true
}

func (a *EnemyAttack) Update(deltaTime float64) {
	owner := a.Owner()
	if owner == nil || a.target == nil || !a.target.Alive() {
		a.touching = false
		return
	}
	enemyCollider, ok := entity.Get[*SquareCollider](owner)
	if !ok {
		return
	}
	playerCollider, ok := entity.Get[*SquareCollider](a.target)
	if !ok {
		return
	}
	a.InflictCollisionDamage(playerCollider, enemyCollider)
}

func (a *EnemyAttack) knockBack(player, enemy *entity.GameObject) {
	if a.knockback <= 0 || player == nil || enemy == nil {
		return
	}
	away := enemy.Position().Sub(player.Position()).Normalize()
	if away == (types.Vector2{}) {
		away = types.Vector2{X: 1}
	}
	enemy.Move(away.Scale(a.knockback))
}
