package main

import (
	"log"
	"os"

	worker "crunch/Worker/app"
)

func main() {
	if err := worker.Run(os.Args[1:]); err != nil {
		log.Fatalf("worker error: %v", err)
	}
}
