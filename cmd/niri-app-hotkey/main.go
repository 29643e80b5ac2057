package main

import (
	"niri-app-hotkey/internal/cli"
)

func main() {
	cli.Execute()
}
