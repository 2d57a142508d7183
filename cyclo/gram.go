// SPDX-License-Identifier: MIT

package cyclo

import (
	"github.com/katalvlaran/cyclovander/matrix"
)

const opGram = "Gram"

// Gram returns G_n, the m×m symmetric Toeplitz matrix G[i,j] = v[|j-i|]
// built from v = Coefficients(n), m = φ(n).
//
// The coefficients are exact integers; they are stored as float64 because the
// inversion step works over the reals. |v[t]| ≤ φ(n) ≤ MaxDim, so the
// conversion is exact.
func Gram(n uint64) (*matrix.Dense, error) {
	v, err := Coefficients(n)
	if err != nil {
		return nil, err
	}

	vf := make([]float64, len(v))
	for t, c := range v {
		vf[t] = float64(c)
	}

	g, err := matrix.NewSymmetricToeplitz(vf)
	if err != nil {
		return nil, cycloErrorf(opGram, n, err)
	}

	return g, nil
}
