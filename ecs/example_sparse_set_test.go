package ecs_test

import (
	"errors"
	"fmt"

	"github.com/plus3/recs/ecs"
)

// ExampleSparseSet shows insertion, lookup and swap-with-last removal.
// The dense order is insertion order until something is removed.
func ExampleSparseSet() {
	set := ecs.NewSparseSet[ecs.Entity16]()

	a := ecs.MakeEntity16(0, 0)
	b := ecs.MakeEntity16(1, 0)
	c := ecs.MakeEntity16(2, 0)
	for _, e := range []ecs.Entity16{a, b, c} {
		if err := set.Insert(e); err != nil {
			panic(err)
		}
	}
	fmt.Println("size:", set.Size())

	if err := set.Remove(a); err != nil {
		panic(err)
	}
	for pos, e := range set.All() {
		fmt.Println(pos, e)
	}

	err := set.Insert(b)
	fmt.Println("duplicate:", errors.Is(err, ecs.ErrDuplicateEntity))

	// Output:
	// size: 3
	// 0 Entity16(2v0)
	// 1 Entity16(1v0)
	// duplicate: true
}

// ExampleNullOf shows the null sentinel and its concrete form.
func ExampleNullOf() {
	null := ecs.NullOf[ecs.Entity16]()
	fmt.Printf("%#x %v\n", null.Integral(), ecs.IsNull(null))

	// Only the index bits matter.
	fmt.Println(ecs.MakeEntity16(0xFFF, 9).IsNull())
	fmt.Println(ecs.Entity16(0).IsNull())

	// Output:
	// 0xfff true
	// true
	// false
}
