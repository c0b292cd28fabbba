package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatrix(t *testing.T) {
	Convey("Given small complex matrices", t, func() {
		x := NewMatrixFromRows([][]complex128{
			{0, 1},
			{1, 0},
		})

		Convey("When taking the Kronecker product with the identity", func() {
			expanded := Identity(2).Kron(x)

			Convey("Then the block structure should place x on the diagonal", func() {
				So(expanded.Rows(), ShouldEqual, 4)
				So(expanded.Cols(), ShouldEqual, 4)
				So(expanded.At(0, 1), ShouldEqual, complex128(1))
				So(expanded.At(1, 0), ShouldEqual, complex128(1))
				So(expanded.At(2, 3), ShouldEqual, complex128(1))
				So(expanded.At(3, 2), ShouldEqual, complex128(1))
				So(expanded.At(0, 0), ShouldEqual, complex128(0))
				So(expanded.At(2, 2), ShouldEqual, complex128(0))
			})
		})

		Convey("When multiplying x by itself", func() {
			product := x.Mul(x)

			Convey("Then the result should be the identity", func() {
				So(product.ApproxEqual(Identity(2), 1e-12), ShouldBeTrue)
			})
		})

		Convey("When multiplying by a vector", func() {
			out := x.MulVec([]complex128{1, 0})

			Convey("Then the vector should be permuted", func() {
				So(out[0], ShouldEqual, complex128(0))
				So(out[1], ShouldEqual, complex128(1))
			})
		})

		Convey("When taking the conjugate transpose", func() {
			m := NewMatrixFromRows([][]complex128{
				{1, 2i},
				{3, 4},
			})
			adj := m.ConjugateTranspose()

			Convey("Then entries should be transposed and conjugated", func() {
				So(adj.At(0, 1), ShouldEqual, complex128(3))
				So(adj.At(1, 0), ShouldEqual, complex128(-2i))
				So(adj.At(1, 1), ShouldEqual, complex128(4))
			})
		})

		Convey("When comparing matrices of different shapes", func() {
			So(x.ApproxEqual(Identity(4), 1e-12), ShouldBeFalse)
		})
	})
}
