package forces

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

const tolerance = 1e-6

type node struct {
	x    float64
	opts []beam.NodeOption
}

func at(x float64, opts ...beam.NodeOption) node { return node{x: x, opts: opts} }

func build(t *testing.T, nodes ...node) *beam.Beam {
	t.Helper()
	b := beam.New(beam.WithName(t.Name()))
	for i, n := range nodes {
		name := string(rune('A' + i))
		if err := b.AppendNode(name, n.x, 0, n.opts...); err != nil {
			t.Fatalf("AppendNode(%s) error = %v", name, err)
		}
	}
	return b
}

func solved(t *testing.T, b *beam.Beam) *Calculator {
	t.Helper()
	r, err := statics.NewDeterminateSolver(b).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	return NewCalculator(b, r)
}

// momentAt finds the segment holding x.
func momentAt(t *testing.T, segments []Segment, x float64) float64 {
	t.Helper()
	for _, s := range segments {
		if x >= s.GlobalLower-tolerance && x <= s.GlobalUpper+tolerance {
			return s.At(x)
		}
	}
	t.Fatalf("no segment contains %v", x)
	return 0
}

func TestCantileverBending(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewFixed())),
		at(5, beam.WithPointLoad(beam.NewPointLoad(-10))),
	)
	c := solved(t, b)

	bending, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	if len(bending) != 1 {
		t.Fatalf("len(bending) = %d, want 1", len(bending))
	}
	seg := bending[0]
	if seg.Expression != (Polynomial{C0: -50, C1: 10}) {
		t.Errorf("Expression = %v, want 10x - 50", seg.Expression)
	}
	if seg.GlobalLower != 0 || seg.GlobalUpper != 5 {
		t.Errorf("bounds = [%v, %v], want [0, 5]", seg.GlobalLower, seg.GlobalUpper)
	}
	if !scalar.EqualWithinAbs(seg.ValueAtUpper, 0, tolerance) {
		t.Errorf("moment at free end = %v, want 0", seg.ValueAtUpper)
	}

	shear, err := c.ShearEquations()
	if err != nil {
		t.Fatalf("ShearEquations() error = %v", err)
	}
	if shear[0].Expression != (Polynomial{C0: 10}) {
		t.Errorf("shear = %v, want 10", shear[0].Expression)
	}
}

func TestNotSolved(t *testing.T) {
	b := build(t, at(0, beam.WithSupport(beam.NewFixed())), at(2))
	c := NewCalculator(b, statics.NewReactions())

	if _, err := c.ShearEquations(); !errors.Is(err, ErrNotSolved) {
		t.Errorf("ShearEquations() error = %v, want %v", err, ErrNotSolved)
	}
	if _, err := c.BendingEquations(); !errors.Is(err, ErrNotSolved) {
		t.Errorf("BendingEquations() error = %v, want %v", err, ErrNotSolved)
	}
}

func TestEmptyBeam(t *testing.T) {
	c := NewCalculator(beam.New(), statics.NewReactions())
	if _, err := c.CalculateBending(); !errors.Is(err, beam.ErrEmptyBeam) {
		t.Errorf("CalculateBending() error = %v, want %v", err, beam.ErrEmptyBeam)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewHinge()), beam.WithDistributedLoad(beam.NewDistributedLoad(-4, 3))),
		at(2, beam.WithPointLoad(beam.NewPointLoad(-6))),
		at(6, beam.WithSupport(beam.NewRoller(beam.Vertical))),
	)
	c := solved(t, b)

	first, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	second, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second CalculateBending() = %v, want %v", second, first)
	}

	shear, err := c.CalculateShear()
	if err != nil {
		t.Fatalf("CalculateShear() error = %v", err)
	}
	cached, _ := c.ShearEquations()
	if !reflect.DeepEqual(shear, cached) {
		t.Error("ShearEquations() differs from CalculateShear()")
	}
}

func TestBendingContinuity(t *testing.T) {
	b := build(t,
		at(0, beam.WithPointLoad(beam.NewPointLoad(-2))),
		at(1, beam.WithSupport(beam.NewHinge()), beam.WithDistributedLoad(beam.NewDistributedLoad(-3, 4.5))),
		at(3, beam.WithPointLoad(beam.NewPointLoad(-4))),
		at(4, beam.WithPointLoad(beam.NewInclinedPointLoad(-5, 70))),
		at(7, beam.WithSupport(beam.NewRoller(beam.Vertical))),
		at(8, beam.WithPointLoad(beam.NewPointLoad(-1))),
	)
	c := solved(t, b)

	bending, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	for i := 0; i+1 < len(bending); i++ {
		if !scalar.EqualWithinAbs(bending[i].ValueAtUpper, bending[i+1].ValueAtLower, tolerance) {
			t.Errorf("segment %d ends at %v, segment %d starts at %v",
				i, bending[i].ValueAtUpper, i+1, bending[i+1].ValueAtLower)
		}
		if bending[i].GlobalUpper != bending[i+1].GlobalLower {
			t.Errorf("segment %d bounds are not contiguous", i)
		}
	}
	if first := bending[0].ValueAtLower; first != 0 {
		t.Errorf("moment at free start = %v, want 0", first)
	}
	if last := bending[len(bending)-1].ValueAtUpper; !scalar.EqualWithinAbs(last, 0, tolerance) {
		t.Errorf("moment at free end = %v, want 0", last)
	}
}

func TestPartialDistributedLoadSplitsSegment(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewHinge()), beam.WithDistributedLoad(beam.NewDistributedLoad(-10, 3))),
		at(6, beam.WithSupport(beam.NewRoller(beam.Vertical))),
	)
	c := solved(t, b)

	bending, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	if len(bending) != 2 {
		t.Fatalf("len(bending) = %d, want 2", len(bending))
	}
	if bending[1].Expression.Degree() != 1 {
		t.Errorf("unloaded segment = %v, want linear", bending[1].Expression)
	}
	if !scalar.EqualWithinAbs(bending[0].ValueAtUpper, 22.5, tolerance) {
		t.Errorf("M(3) = %v, want 22.5", bending[0].ValueAtUpper)
	}
	if !scalar.EqualWithinAbs(bending[1].ValueAtUpper, 0, tolerance) {
		t.Errorf("M(6) = %v, want 0", bending[1].ValueAtUpper)
	}
}

func TestMaxAbs(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewHinge()), beam.WithDistributedLoad(beam.NewDistributedLoad(-10, 6))),
		at(6, beam.WithSupport(beam.NewRoller(beam.Vertical))),
	)
	c := solved(t, b)

	bending, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	got, ok := MaxAbs(bending)
	if !ok {
		t.Fatal("MaxAbs() found nothing")
	}
	if !scalar.EqualWithinAbs(got.X, 3, tolerance) || !scalar.EqualWithinAbs(got.Value, 45, tolerance) {
		t.Errorf("MaxAbs() = %+v, want 45 at 3", got)
	}

	if _, ok := MaxAbs(nil); ok {
		t.Error("MaxAbs(nil) should report nothing")
	}
}

func TestInternalHingeHasZeroMoment(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewFixed())),
		at(4, beam.WithSupport(beam.NewInternalHinge())),
		at(6, beam.WithPointLoad(beam.NewPointLoad(-10))),
		at(8, beam.WithSupport(beam.NewRoller(beam.Vertical))),
	)
	c := solved(t, b)

	bending, err := c.CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	if m := momentAt(t, bending, 4); !scalar.EqualWithinAbs(m, 0, tolerance) {
		t.Errorf("M(4) = %v, want 0", m)
	}
	if m := momentAt(t, bending, 0); !scalar.EqualWithinAbs(m, -20, tolerance) {
		t.Errorf("M(0) = %v, want -20", m)
	}
}

func TestContinuousBeamInteriorMoment(t *testing.T) {
	b := build(t,
		at(0, beam.WithSupport(beam.NewHinge())),
		at(2, beam.WithPointLoad(beam.NewPointLoad(-10))),
		at(4, beam.WithSupport(beam.NewRoller(beam.Vertical))),
		at(6, beam.WithPointLoad(beam.NewPointLoad(-10))),
		at(8, beam.WithSupport(beam.NewRoller(beam.Vertical))),
	)
	res, err := statics.SolveContinuous(b)
	if err != nil {
		t.Fatalf("SolveContinuous() error = %v", err)
	}

	bending, err := NewCalculator(b, res.Reactions).CalculateBending()
	if err != nil {
		t.Fatalf("CalculateBending() error = %v", err)
	}
	if m := momentAt(t, bending, 4); !scalar.EqualWithinAbs(m, res.Moments.Mb, tolerance) {
		t.Errorf("M(4) = %v, want Mb = %v", m, res.Moments.Mb)
	}
}
