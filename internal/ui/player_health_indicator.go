// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"nightmare-descent/internal/config"
	"nightmare-descent/internal/graphics"
)

// PlayerHealthIndicator отображает здоровье игрока полосой с подписью "70/100".
type PlayerHealthIndicator struct {
	X, Y          float64
	Width, Height float64
	FillColor     color.RGBA
	TextColor     color.RGBA
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:         x,
		Y:         y,
		Width:     config.HealthBarWidth,
		Height:    config.HealthBarHeight,
		FillColor: config.HealthColor,
		TextColor: config.TextLightColor,
	}
}

// FillWidth возвращает ширину заполненной части полосы.
func (i *PlayerHealthIndicator) FillWidth(health, maxHealth float64) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return i.Width
	}
	return i.Width * health / maxHealth
}

// Label форматирует подпись; дробная часть отбрасывается.
func Label(health, maxHealth float64) string {
	return strconv.Itoa(int(health)) + "/" + strconv.Itoa(int(maxHealth))
}

// Draw рисует фон полосы, заполненную часть и подпись по центру.
func (i *PlayerHealthIndicator) Draw(target graphics.Target, health, maxHealth float64) {
	target.DrawRect(i.X, i.Y, i.Width, i.Height, DarkenColor(i.FillColor))
	if w := i.FillWidth(health, maxHealth); w > 0 {
		target.DrawRect(i.X, i.Y, w, i.Height, i.FillColor)
	}

	text := Label(health, maxHealth)
	textX := int(i.X + (i.Width-float64(target.MeasureText(text)))/2)
	textY := int(i.Y + i.Height - 5)
	target.DrawText(text, textX, textY, i.TextColor)
}
