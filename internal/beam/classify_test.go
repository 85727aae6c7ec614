package beam

import "testing"

func TestNewSupport(t *testing.T) {
	tests := []struct {
		rx, ry, rm bool
		wantKind   SupportKind
		wantDir    Direction
		wantErr    bool
	}{
		{true, true, true, Fixed, Vertical, false},
		{true, true, false, Hinge, Vertical, false},
		{false, true, false, Roller, Vertical, false},
		{true, false, false, Roller, Horizontal, false},
		{false, false, false, 0, 0, true},
		{false, false, true, 0, 0, true},
		{false, true, true, Roller, Vertical, false},
		{true, false, true, Roller, Horizontal, false},
	}

	for _, tt := range tests {
		s, err := NewSupport(tt.rx, tt.ry, tt.rm)
		if tt.wantErr {
			if !IsValidationError(err) {
				t.Errorf("NewSupport(%t, %t, %t) error = %v, want validation error", tt.rx, tt.ry, tt.rm, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewSupport(%t, %t, %t) error = %v", tt.rx, tt.ry, tt.rm, err)
			continue
		}
		if s.Kind != tt.wantKind {
			t.Errorf("NewSupport(%t, %t, %t).Kind = %v, want %v", tt.rx, tt.ry, tt.rm, s.Kind, tt.wantKind)
		}
		if s.Kind == Roller && s.Direction != tt.wantDir {
			t.Errorf("NewSupport(%t, %t, %t).Direction = %v, want %v", tt.rx, tt.ry, tt.rm, s.Direction, tt.wantDir)
		}
	}
}

func TestRestraintCounts(t *testing.T) {
	if got := NewFixed().RestraintCount(); got != 3 {
		t.Errorf("Fixed restraints = %d, want 3", got)
	}
	if got := NewHinge().RestraintCount(); got != 2 {
		t.Errorf("Hinge restraints = %d, want 2", got)
	}
	if got := NewRoller(Vertical).RestraintCount(); got != 1 {
		t.Errorf("Roller restraints = %d, want 1", got)
	}
	if got := NewInternalHinge().ReleaseEquations(); got != 1 {
		t.Errorf("internal hinge releases = %d, want 1", got)
	}
	if got := NewInternalRoller().ReleaseEquations(); got != 2 {
		t.Errorf("internal roller releases = %d, want 2", got)
	}
	if got := NewHinge().ReleaseEquations(); got != 0 {
		t.Errorf("external hinge releases = %d, want 0", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		supports []*Support
		want     Classification
		degree   int
		stable   bool
	}{
		{"hinge roller", []*Support{NewHinge(), nil, NewRoller(Vertical)}, Determinate, 0, true},
		{"cantilever", []*Support{NewFixed(), nil, nil}, Determinate, 0, true},
		{"single hinge", []*Support{NewHinge(), nil, nil}, Unstable, -1, false},
		{"rollers only", []*Support{NewRoller(Vertical), NewRoller(Vertical), NewRoller(Vertical)}, Determinate, 0, false},
		{"hinge horizontal roller", []*Support{NewHinge(), nil, NewRoller(Horizontal)}, Determinate, 0, false},
		{"continuous", []*Support{NewHinge(), NewRoller(Vertical), NewRoller(Vertical)}, Indeterminate, 1, false},
		{"propped cantilever", []*Support{NewFixed(), nil, NewRoller(Vertical)}, Indeterminate, 1, false},
		{"gerber", []*Support{NewFixed(), NewInternalHinge(), NewRoller(Vertical)}, Determinate, 0, true},
		{"internal roller", []*Support{NewFixed(), NewInternalRoller(), NewHinge()}, Determinate, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for i, s := range tt.supports {
				var opts []NodeOption
				if s != nil {
					opts = append(opts, WithSupport(s))
				}
				mustAppend(t, b, string(rune('A'+i)), float64(i)*4, opts...)
			}

			if got := b.Classify(); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
			if got := b.DegreeOfIndeterminacy(); got != tt.degree {
				t.Errorf("DegreeOfIndeterminacy() = %d, want %d", got, tt.degree)
			}
			if got := b.IsGeometricallyStable(); got != tt.stable {
				t.Errorf("IsGeometricallyStable() = %t, want %t", got, tt.stable)
			}
		})
	}
}

func TestClassifyMatchesIndeterminacySign(t *testing.T) {
	kinds := []func() *Support{
		func() *Support { return nil },
		NewFixed,
		NewHinge,
		func() *Support { return NewRoller(Vertical) },
		func() *Support { return NewRoller(Horizontal) },
		NewInternalHinge,
	}

	for i := range kinds {
		for j := range kinds {
			for k := range kinds {
				b := New()
				for n, f := range []func() *Support{kinds[i], kinds[j], kinds[k]} {
					var opts []NodeOption
					if s := f(); s != nil {
						opts = append(opts, WithSupport(s))
					}
					mustAppend(t, b, string(rune('A'+n)), float64(n), opts...)
				}

				d := b.DegreeOfIndeterminacy()
				c := b.Classify()
				switch {
				case d < 0 && c != Unstable,
					d == 0 && c != Determinate,
					d > 0 && c != Indeterminate:
					t.Errorf("supports %d,%d,%d: Classify() = %v with degree %d", i, j, k, c, d)
				}
				if b.IsGeometricallyStable() && d != 0 {
					t.Errorf("supports %d,%d,%d: stable with degree %d", i, j, k, d)
				}
			}
		}
	}
}
