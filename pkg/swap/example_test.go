package swap_test

import (
	"fmt"
	"regexp"

	"github.com/walteh/wordswap/pkg/swap"
)

func ExampleSwapper_Swap() {
	// Create a swapper
	swapper := swap.New(swap.Options{
		Indicator:        "{{SWAPPED}}",
		IndicatorPattern: regexp.MustCompile(`\{\{SWAPPED\}\}`),
	})

	// Define the rules, in the order they run
	rules := []swap.Rule{
		{Word: "cat", Replacement: "dog", CanBePlural: true, CanBePossessive: true},
		{Word: "dog", Replacement: "cat", CanBePlural: true},
	}

	// Apply them
	result := swapper.Swap("Cats chase dogs. The cat's bowl is empty.", rules)

	fmt.Printf("Original: %s\n", result.Original)
	fmt.Printf("Swapped: %s\n", result.Swapped)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)

	// Output:
	// Original: Cats chase dogs. The cat's bowl is empty.
	// Swapped: Dogs chase cats. The dog's bowl is empty.
	// Changes: 3
}

func ExampleSwap() {
	out := swap.Swap("the cat sat", []swap.Rule{
		{Word: "cat", Replacement: "dog"},
		{Word: "dog", Replacement: "fish"},
	}, "~~", nil)

	fmt.Println(out)

	// Output:
	// the dog sat
}
