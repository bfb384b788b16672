package blend

import "testing"

func almostEqual4(a, b [4]float64, eps float64) bool {
	for i := 0; i < 4; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}

func TestOffOverwrites(t *testing.T) {
	dst := [4]float64{0.2, 0.2, 0.2, 1}
	src := [4]float64{0.9, 0.1, 0.1, 1}
	if got := Apply(Off, src, dst); got != src {
		t.Fatalf("Off = %v, want %v", got, src)
	}
}

func TestAlphaBlendHalfOpacity(t *testing.T) {
	src := [4]float64{1, 0, 0, 0.5}
	dst := [4]float64{0, 0, 1, 1}
	got := Apply(Alpha, src, dst)
	want := [4]float64{0.5, 0, 0.5, 0.75}
	if !almostEqual4(got, want, 1e-9) {
		t.Fatalf("Alpha = %v, want %v", got, want)
	}
}

func TestPremultipliedAlphaOpaqueSrcOverwrites(t *testing.T) {
	src := [4]float64{1, 0, 0, 1}
	dst := [4]float64{0, 1, 0, 1}
	got := Apply(PremultipliedAlpha, src, dst)
	if !almostEqual4(got, src, 1e-9) {
		t.Fatalf("PremultipliedAlpha with opaque src = %v, want %v", got, src)
	}
}

func TestAdditiveClampsToOne(t *testing.T) {
	src := [4]float64{0.8, 0.8, 0.8, 1}
	dst := [4]float64{0.8, 0.8, 0.8, 1}
	got := Apply(Additive, src, dst)
	want := [4]float64{1, 1, 1, 1}
	if got != want {
		t.Fatalf("Additive = %v, want %v", got, want)
	}
}

func TestScreenBlackIsIdentity(t *testing.T) {
	src := [4]float64{0, 0, 0, 1}
	dst := [4]float64{0.3, 0.6, 0.9, 1}
	got := Apply(Screen, src, dst)
	if !almostEqual4(got, dst, 1e-9) {
		t.Fatalf("Screen with black src = %v, want identity %v", got, dst)
	}
}

func TestScreenWhiteSaturates(t *testing.T) {
	src := [4]float64{1, 1, 1, 1}
	dst := [4]float64{0.3, 0.6, 0.9, 1}
	got := Apply(Screen, src, dst)
	want := [4]float64{1, 1, 1, 1}
	if !almostEqual4(got, want, 1e-9) {
		t.Fatalf("Screen with white src = %v, want %v", got, want)
	}
}
