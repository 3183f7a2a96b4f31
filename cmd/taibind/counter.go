package main

import (
	"fmt"

	"github.com/reusee/taibind/objects"
)

type Counter struct {
	objects.Base
	name  string
	value int
}

func (c *Counter) Add(n int) int {
	c.value += n
	return c.value
}

func (c Counter) Value() int {
	return c.value
}

func (c Counter) Describe(prefix string) string {
	return fmt.Sprintf("%s%s=%d", prefix, c.name, c.value)
}

func logChange(n int, id objects.ID) {
	fmt.Printf("object %s changed by %d\n", id, n)
}
