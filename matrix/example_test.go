package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cyclovander/matrix"
)

// ExampleNewSymmetricToeplitz builds the Gram-style matrix A[i,j] = v[|j-i|]
// and reads back its inverse and trace.
func ExampleNewSymmetricToeplitz() {
	A, err := matrix.NewSymmetricToeplitz([]float64{2, -1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(A)

	inv, err := matrix.Inverse(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	scaled, _ := matrix.Scale(inv, 3)
	tr, _ := matrix.Trace(scaled)
	fmt.Println("trace(3·A⁻¹) =", tr)

	// Output:
	// [2, -1]
	// [-1, 2]
	// trace(3·A⁻¹) = 4
}
