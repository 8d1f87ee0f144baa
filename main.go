package main

import "github.com/MeKo-Tech/heightmap/internal/cmd"

func main() {
	cmd.Execute()
}
