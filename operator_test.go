package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewOperator(t *testing.T) {
	Convey("Given candidate gate matrices", t, func() {
		Convey("When wrapping a unitary matrix", func() {
			op, err := NewOperator(NewMatrixFromRows([][]complex128{
				{0, 1},
				{1, 0},
			}))

			Convey("Then the operator should be accepted", func() {
				So(err, ShouldBeNil)
				So(op.Dim(), ShouldEqual, 2)
				So(op.Qubits(), ShouldEqual, 1)
			})
		})

		Convey("When wrapping a non-square matrix", func() {
			_, err := NewOperator(NewMatrix(2, 3))

			Convey("Then a ValidationError should be returned", func() {
				var verr *ValidationError
				So(err, ShouldNotBeNil)
				So(errors.As(err, &verr), ShouldBeTrue)
			})
		})

		Convey("When wrapping a square non-unitary matrix", func() {
			_, err := NewOperator(NewMatrixFromRows([][]complex128{
				{1, 1},
				{0, 1},
			}))

			Convey("Then a ValidationError should be returned", func() {
				var verr *ValidationError
				So(err, ShouldNotBeNil)
				So(errors.As(err, &verr), ShouldBeTrue)
			})
		})

		Convey("When wrapping a two-qubit identity", func() {
			op, err := NewOperator(Identity(4))

			Convey("Then it should act on two qubits", func() {
				So(err, ShouldBeNil)
				So(op.Qubits(), ShouldEqual, 2)
			})
		})
	})
}

func TestBuiltinGates(t *testing.T) {
	Convey("Given the built-in gates", t, func() {
		Convey("PauliX should be the bit flip", func() {
			m := PauliX().Matrix()
			So(m.At(0, 0), ShouldEqual, complex128(0))
			So(m.At(0, 1), ShouldEqual, complex128(1))
			So(m.At(1, 0), ShouldEqual, complex128(1))
			So(m.At(1, 1), ShouldEqual, complex128(0))
		})

		Convey("PauliZ should be the phase flip", func() {
			m := PauliZ().Matrix()
			So(m.At(0, 0), ShouldEqual, complex128(1))
			So(m.At(1, 1), ShouldEqual, complex128(-1))
		})

		Convey("Hadamard should be the normalized sign matrix", func() {
			m := Hadamard().Matrix()
			h := 1 / math.Sqrt2
			So(real(m.At(0, 0)), ShouldAlmostEqual, h, 1e-12)
			So(real(m.At(1, 1)), ShouldAlmostEqual, -h, 1e-12)
		})

		Convey("Each built-in should survive unitarity validation", func() {
			for _, op := range []*Operator{PauliX(), PauliZ(), Hadamard()} {
				_, err := NewOperator(op.Matrix())
				So(err, ShouldBeNil)
			}
		})
	})
}
