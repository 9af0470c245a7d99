package main

import (
	"log"

	"tableflip.dev/chipfield/pkg/commands"
)

func main() {
	log.SetFlags(0)
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("chipfield: %v", err)
	}
}
