package main

import "embed"

// configFS holds the default game.yaml and level maps
//
//go:embed configs
var configFS embed.FS
