//go:build ignore

// Скрипт для генерации иконки трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

const size = 64

var (
	body = color.RGBA{45, 45, 50, 255}
	keys = color.RGBA{88, 166, 255, 255}
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	path := filepath.Join(dir, "icon.png")
	if err := generateIcon(path); err != nil {
		log.Fatalf("Ошибка генерации %s: %v", path, err)
	}
	log.Printf("Создан: %s", path)
}

// generateIcon рисует клавиатуру: корпус, три ряда клавиш и пробел.
func generateIcon(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fill(img, 4, 14, 60, 50, body)

	// Ряды клавиш
	for row := 0; row < 3; row++ {
		y := 18 + row*8
		for col := 0; col < 6; col++ {
			x := 8 + col*8 + row%2*2
			fill(img, x, y, x+6, y+6, keys)
		}
	}

	// Пробел
	fill(img, 16, 42, 48, 46, keys)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func fill(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}
