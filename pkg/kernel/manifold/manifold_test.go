//go:build manifold

package manifold

import (
	"math"
	"testing"

	"github.com/kamikit/kami/pkg/geom"
	"github.com/kamikit/kami/pkg/kernel"
)

func mustNew(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k
}

func mustSheet(t *testing.T, k kernel.Kernel, outline []geom.Vec, thickness float64) kernel.Solid {
	t.Helper()
	s, err := k.Sheet(outline, thickness)
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	return s
}

func square(size float64) []geom.Vec {
	return []geom.Vec{
		geom.V(0, 0), geom.V(size, 0), geom.V(size, size), geom.V(0, size),
	}
}

func TestSheet(t *testing.T) {
	k := mustNew(t)
	s := mustSheet(t, k, square(10), 2)

	min, max := s.BoundingBox()
	wantMin := [3]float64{0, 0, 0}
	wantMax := [3]float64{10, 10, 2}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Sheet min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Sheet max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestSheetBadArguments(t *testing.T) {
	k := mustNew(t)

	if _, err := k.Sheet(square(10), 0); err == nil {
		t.Error("zero thickness accepted")
	}
	if _, err := k.Sheet([]geom.Vec{geom.V(0, 0), geom.V(1, 0)}, 1); err == nil {
		t.Error("two-point outline accepted")
	}
}

func TestTranslate(t *testing.T) {
	k := mustNew(t)
	s := mustSheet(t, k, square(10), 1)
	moved := k.Translate(s, 100, 200, 300)
	if moved == nil {
		t.Fatal("Translate() returned nil")
	}

	min, max := moved.BoundingBox()
	wantMin := [3]float64{100, 200, 300}
	wantMax := [3]float64{110, 210, 301}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Translate min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Translate max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := mustNew(t)
	// A long thin sheet along X rotated 90 degrees around Z extends
	// along Y instead.
	s := mustSheet(t, k, []geom.Vec{
		geom.V(0, 0), geom.V(100, 0), geom.V(100, 10), geom.V(0, 10),
	}, 1)
	rotated := k.Rotate(s, 0, 0, 90)

	min, max := rotated.BoundingBox()
	if ext := max[0] - min[0]; math.Abs(ext-10) > 1e-4 {
		t.Errorf("rotated X extent = %f, want 10", ext)
	}
	if ext := max[1] - min[1]; math.Abs(ext-100) > 1e-4 {
		t.Errorf("rotated Y extent = %f, want 100", ext)
	}
}

func TestToMesh(t *testing.T) {
	k := mustNew(t)
	s := mustSheet(t, k, square(10), 1)
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if mesh == nil {
		t.Fatal("ToMesh() returned nil mesh")
	}
	if mesh.IsEmpty() {
		t.Error("ToMesh() returned empty mesh for a sheet")
	}

	// An extruded quad is a box: 12 triangles minimum.
	if mesh.TriangleCount() < 12 {
		t.Errorf("ToMesh() triangle count = %d, want >= 12", mesh.TriangleCount())
	}
	if mesh.VertexCount() < 8 {
		t.Errorf("ToMesh() vertex count = %d, want >= 8", mesh.VertexCount())
	}

	// Verify normals array has the same length as vertices.
	if len(mesh.Normals) != len(mesh.Vertices) {
		t.Errorf("ToMesh() normals length = %d, vertices length = %d, want equal",
			len(mesh.Normals), len(mesh.Vertices))
	}
}
