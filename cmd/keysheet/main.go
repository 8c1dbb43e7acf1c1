// Keysheet - шпаргалка горячих клавиш в системном трее.
//
// Глобальная комбинация (по умолчанию Ctrl+Shift+S) показывает и скрывает
// список сочетаний клавиш. Список и комбинация настраиваются в окне настроек
// и хранятся в config.json рядом с исполняемым файлом.
package main

import (
	"log"

	"keysheet/internal/app"
	"keysheet/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Keysheet %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	application := app.New()
	log.Println("Приложение запущено. Нажмите горячую клавишу, чтобы показать шпаргалку.")
	application.Run()
}
