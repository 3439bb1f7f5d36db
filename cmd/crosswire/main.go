package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/crosswire/crossing"
	"chosenoffset.com/crosswire/wireloader"
)

func main() {
	inputPath := flag.String("input", "input.txt", "path to the wire panel file (two move lines)")
	flag.Parse()

	panel, err := wireloader.LoadPanel(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load panel: %v", err)
	}

	if p, ok := crossing.Closest(panel.A, panel.B); ok {
		fmt.Printf("Closest intersection: (%d, %d), distance %d\n", p.X, p.Y, p.ManhattanDistance())
	} else {
		fmt.Println("Closest intersection: none")
	}

	if steps, ok := crossing.FewestSteps(panel.A, panel.B); ok {
		fmt.Printf("Intersection with minimal steps requires %d steps\n", steps)
	} else {
		fmt.Println("Intersection with minimal steps: none")
	}
}
