package main

import (
	"log"
	"os"

	"github.com/filecoin-project/go-floatbits/cmd/floatbits/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("floatbits: ")
	if err := cmd.New().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
