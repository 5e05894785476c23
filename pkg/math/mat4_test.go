package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale is not scale then translate.
	ts := Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	st := Scale(2, 2, 2).Mul(Translate(1, 0, 0))

	p := Vec3{1, 0, 0}
	gotTS := ts.TransformPoint(p)
	gotST := st.TransformPoint(p)

	if gotTS != (Vec3{3, 0, 0}) {
		t.Errorf("T*S applied to (1,0,0): got %v, want (3,0,0)", gotTS)
	}
	if gotST != (Vec3{4, 0, 0}) {
		t.Errorf("S*T applied to (1,0,0): got %v, want (4,0,0)", gotST)
	}
}

func TestMulVec4(t *testing.T) {
	m := Translate(10, 20, 30)

	// w=1 picks up the translation
	got := m.MulVec4(Vec4{1, 2, 3, 1})
	want := Vec4{11, 22, 33, 1}
	if got != want {
		t.Errorf("MulVec4 point: got %v, want %v", got, want)
	}

	// w=0 ignores it
	got = m.MulVec4(Vec4{1, 2, 3, 0})
	want = Vec4{1, 2, 3, 0}
	if got != want {
		t.Errorf("MulVec4 direction: got %v, want %v", got, want)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestTRS(t *testing.T) {
	m := TRS(Vec3{10, 0, 0}, QuatIdentity(), Vec3{2, 2, 2})

	// Scale is applied before translation
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if abs(got.X-want.X) > 0.001 || abs(got.Y-want.Y) > 0.001 || abs(got.Z-want.Z) > 0.001 {
		t.Errorf("TRS: got %v, want %v", got, want)
	}
}

func TestTRSRotation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, float32(math.Pi/2))
	m := TRS(Vec3{}, q, Vec3{1, 1, 1})

	got := m.TransformPoint(Vec3{1, 0, 0})
	// 90 degrees around Z maps (1,0,0) to (0,1,0)
	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("TRS rotation: got %v, want (0, 1, 0)", got)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye should land at the view-space origin
	got := m.TransformPoint(eye)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(3, -2, 7).Mul(Scale(2, 2, 2))
	inv := m.Inverse()
	result := m.Mul(inv)

	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(result[i]-id[i]) > 0.001 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, result[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	// Zero scale collapses the matrix; Inverse falls back to identity
	m := Scale(0, 0, 0)
	inv := m.Inverse()
	if inv != Identity() {
		t.Errorf("singular Inverse should return identity, got %v", inv)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
