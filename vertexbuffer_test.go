package gl2d

import "testing"

func TestVertexBuffer_AllocShrinkClear(t *testing.T) {
	vb := NewVertexBuffer(0)
	if vb.Cap() < minVertexCapacity {
		t.Errorf("Cap() = %d, want at least %d", vb.Cap(), minVertexCapacity)
	}
	if c := NewVertexBuffer(-5).Cap(); c < minVertexCapacity {
		t.Errorf("NewVertexBuffer(-5).Cap() = %d, want at least %d", c, minVertexCapacity)
	}
	if c := NewVertexBuffer(4 * minVertexCapacity).Cap(); c < 4*minVertexCapacity {
		t.Errorf("NewVertexBuffer(%d).Cap() = %d", 4*minVertexCapacity, c)
	}

	v := vb.Alloc(6)
	if len(v) != 6 || vb.Len() != 6 {
		t.Fatalf("Alloc(6): len %d, Len() %d", len(v), vb.Len())
	}
	v[5].Pos = V2(3, 4)
	if got := vb.Vertices()[5].Pos; got != V2(3, 4) {
		t.Errorf("Alloc result does not alias buffer: %v", got)
	}

	vb.Shrink(2)
	if vb.Len() != 4 {
		t.Errorf("after Shrink(2): Len() = %d, want 4", vb.Len())
	}
	vb.Shrink(100)
	if vb.Len() != 0 {
		t.Errorf("Shrink past start: Len() = %d, want 0", vb.Len())
	}

	vb.Alloc(10)
	c := vb.Cap()
	vb.Clear()
	if vb.Len() != 0 || vb.Cap() != c {
		t.Errorf("Clear: Len() %d Cap() %d, want 0 and %d", vb.Len(), vb.Cap(), c)
	}
}

func TestVertexBuffer_AllocZeroes(t *testing.T) {
	vb := NewVertexBuffer(8)
	v := vb.Alloc(2)
	v[0].Color = White
	vb.Clear()
	if got := vb.Alloc(2)[0].Color; got != Transparent {
		t.Errorf("reused vertex not cleared: %v", got)
	}
	if vb.Alloc(0) != nil || vb.Alloc(-1) != nil {
		t.Error("Alloc of non-positive count should return nil")
	}
}

func TestVertexBuffer_GrowPreservesContents(t *testing.T) {
	vb := NewVertexBuffer(minVertexCapacity)
	for i := 0; i < 3*minVertexCapacity; i++ {
		vb.Alloc(1)[0].Pos.X = float32(i)
	}
	if vb.Len() != 3*minVertexCapacity {
		t.Fatalf("Len() = %d", vb.Len())
	}
	for i, v := range vb.Vertices() {
		if v.Pos.X != float32(i) {
			t.Fatalf("vertex %d = %v after growth", i, v.Pos.X)
		}
	}
}
