// internal/event/types.go
package event

const (
	PlayerHit     EventType = "PlayerHit"     // Враг нанёс урон игроку, Data: PlayerHitData
	EntityDied    EventType = "EntityDied"    // Здоровье упало до нуля, Data: *entity.GameObject
	EntityRemoved EventType = "EntityRemoved" // Объект удалён из сцены, Data: types.EntityID
)

// PlayerHitData описывает одно попадание по игроку.
type PlayerHitData struct {
	Damage    float64
	Remaining float64
}
