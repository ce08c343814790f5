//go:build android

package main

import "fountain/internal/game"

func main() {
	game.RunAndroid()
}
