package main

import (
	"fmt"

	"github.com/tamirms/ouigen"
)

func runClassify(names []string) error {
	for _, name := range names {
		tag := ouigen.Classify(name)
		fmt.Printf("%s => %s (tag %d)\n", name, tag, uint8(tag))
	}
	return nil
}
