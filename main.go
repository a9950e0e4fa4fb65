package main

import (
	"log"

	"github.com/intellects/aiready/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
