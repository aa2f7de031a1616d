package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleMulStrassen multiplies two 2×2 matrices with one level of recursion.
func ExampleMulStrassen() {
	a, _ := matrix.NewDenseFrom([][]float32{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFrom([][]float32{{5, 6}, {7, 8}})

	c, err := matrix.MulStrassen(a, b, matrix.WithThreshold(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMulStrassen_oddSize shows the halving precondition and padding.
func ExampleMulStrassen_oddSize() {
	a, _ := matrix.NewIdentity(3)

	_, err := matrix.MulStrassen(a, a, matrix.WithThreshold(1))
	fmt.Println(errors.Is(err, matrix.ErrOddSize))

	c, _ := matrix.MulStrassen(a, a, matrix.WithThreshold(1), matrix.WithZeroPadding())
	fmt.Print(c)

	// Output:
	// true
	// [1, 0, 0]
	// [0, 1, 0]
	// [0, 0, 1]
}

// ExampleSplit shows the quadrant order.
func ExampleSplit() {
	m, _ := matrix.NewDenseFrom([][]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	q, _ := matrix.Split(m)
	fmt.Println(q[matrix.QTopRight].ToRows())
	fmt.Println(q[matrix.QBottomLeft].ToRows())

	// Output:
	// [[3 4] [7 8]]
	// [[9 10] [13 14]]
}

// ExampleMatVec multiplies a matrix by a vector.
func ExampleMatVec() {
	m, _ := matrix.NewDenseFrom([][]float32{{1, 2}, {3, 4}})
	y, _ := matrix.MatVec(m, []float32{5, 6})
	fmt.Println(y)

	// Output:
	// [17 39]
}

// ExampleFindMax reports the first greatest cell.
func ExampleFindMax() {
	m, _ := matrix.NewDenseFrom([][]float32{{1, 9}, {9, 4}})
	e, _ := matrix.FindMax(m, matrix.SeedElement())
	fmt.Printf("%v at (%d,%d)\n", e.Value, e.Row, e.Col)

	// Output:
	// 9 at (0,1)
}
