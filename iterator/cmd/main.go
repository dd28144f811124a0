package main

import (
	"fmt"

	"github.com/go-leo/patterns/iterator"
)

func main() {
	numbers := iterator.NewRange(1, 5)
	for numbers.HasNext() {
		number, _ := numbers.Next()
		fmt.Println(number)
	}
	if _, err := numbers.Next(); err != nil {
		fmt.Println(err)
	}
}
