package vecmath

import (
	"gonum.org/v1/gonum/mat"
)

// IsHandednessFlipped reports whether m has a negative determinant, which
// requires the caller to XOR the flip-facing flag into an instance's flags.
func IsHandednessFlipped(m Mat4) bool {
	return m.Det() < 0
}

// TransformRoundTripError computes the Frobenius norm (as defined by
// gonum.org/v1/gonum/mat.Norm with p=2) of (transform*inverse - I). Used to
// assert transform*inverse stays close to identity for every TLAS instance.
func TransformRoundTripError(transform, inverse Mat4) float64 {
	product := transform.Mul4(inverse)

	prod := mat.NewDense(4, 4, nil)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			prod.Set(row, col, float64(product[col*4+row]))
		}
	}

	identity := mat.NewDiagDense(4, []float64{1, 1, 1, 1})

	var diff mat.Dense
	diff.Sub(prod, identity)

	return mat.Norm(&diff, 2)
}
