package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestPartyColorsAtZero(t *testing.T) {
	ambient, diffuse := PartyColors(0)
	if ambient != (mgl32.Vec3{}) || diffuse != (mgl32.Vec3{}) {
		t.Errorf("PartyColors(0) = %v, %v, want black", ambient, diffuse)
	}
}

func TestPartyColorsScaling(t *testing.T) {
	for _, ts := range []float64{0.3, 1.7, 12.0, 1000.5} {
		ambient, diffuse := PartyColors(ts)

		want := mgl32.Vec3{
			float32(math.Sin(ts*2.0)) * 0.5,
			float32(math.Sin(ts*0.7)) * 0.5,
			float32(math.Sin(ts*1.3)) * 0.5,
		}
		for i := 0; i < 3; i++ {
			if !near(diffuse[i], want[i]) {
				t.Errorf("t=%v diffuse[%d] = %f, want %f", ts, i, diffuse[i], want[i])
			}
			if !near(ambient[i], diffuse[i]*0.2) {
				t.Errorf("t=%v ambient[%d] = %f, want %f", ts, i, ambient[i], diffuse[i]*0.2)
			}
			if diffuse[i] > 0.5 || diffuse[i] < -0.5 {
				t.Errorf("t=%v diffuse[%d] = %f out of [-0.5, 0.5]", ts, i, diffuse[i])
			}
		}
	}
}

func TestAnimate(t *testing.T) {
	l := DefaultPointLight()
	pos, spec := l.Position, l.Specular

	l.Animate(2.5)

	ambient, diffuse := PartyColors(2.5)
	if l.Ambient != ambient || l.Diffuse != diffuse {
		t.Errorf("Animate did not apply PartyColors: %v %v", l.Ambient, l.Diffuse)
	}
	if l.Position != pos || l.Specular != spec {
		t.Error("Animate changed position or specular")
	}
}

func TestDefaults(t *testing.T) {
	l := DefaultPointLight()
	if l.Position != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("Position = %v, want (1,2,0)", l.Position)
	}
	if l.Diffuse != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Diffuse = %v, want 0.5 grey", l.Diffuse)
	}
	if !near(l.Ambient[0], 0.1) {
		t.Errorf("Ambient = %v, want 0.1 grey", l.Ambient)
	}

	m := SolidMaterial(mgl32.Vec3{1.0, 0.5, 0.31})
	if m.Ambient != m.Diffuse || m.Specular != (mgl32.Vec3{0.5, 0.5, 0.5}) || m.Shininess != 32 {
		t.Errorf("SolidMaterial() = %+v", m)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name    string
		diffuse mgl32.Vec3
		want    mgl32.Vec3
	}{
		{"white", mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1}},
		{"negative party phase", mgl32.Vec3{-0.4, 0.25, 0}, mgl32.Vec3{0, 0.5, 0}},
		{"overbright", mgl32.Vec3{2, 0.1, 0.5}, mgl32.Vec3{1, 0.2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := PointLight{Diffuse: tt.diffuse}
			got := l.Color()
			for i := 0; i < 3; i++ {
				if !near(got[i], tt.want[i]) {
					t.Errorf("Color() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
