package set_test

import (
	"fmt"

	"github.com/denismitr/simpleset/set"
)

func ExampleSimpleSet() {
	s := set.New(1, 2, 2)
	s.Insert(3)
	s.InsertSlice([]int{3, 4})
	fmt.Println(s, s.Len())
	fmt.Println("Contains 2:", s.Contains(2))
	fmt.Println("Empty:", s.IsEmpty())

	// Output:
	// {1, 2, 3, 4} 4
	// Contains 2: true
	// Empty: false
}

func ExampleSimpleSet_Union() {
	a := set.New(1, 2)
	b := set.New(2, 3)

	u, err := a.Union(b)
	if err != nil {
		panic(err)
	}

	i, _ := a.Intersection(b)
	d, _ := a.Difference(b)
	fmt.Println(u, i, d)

	// Output: {1, 2, 3} {2} {1}
}

func ExampleSimpleSet_Equals() {
	eq, err := set.New(1, 2).Equals(set.New(2, 1))
	fmt.Println(eq, err)

	_, err = set.New(1, 2).Equals(nil)
	fmt.Println(err)

	// Output:
	// true <nil>
	// equal: set is nil: invalid argument
}
