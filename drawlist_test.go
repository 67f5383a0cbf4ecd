package gl2d

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestDrawList_ResetState(t *testing.T) {
	for name, dl := range map[string]*DrawList{
		"new":   NewDrawList(),
		"zero":  {},
		"reset": func() *DrawList { d := NewDrawList(); d.Append(Lines, 4); d.Reset(); return d }(),
	} {
		want := []DrawCall{{Topology: Triangles}}
		if got := dl.Calls(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: Calls() = %v, want %v", name, got, want)
		}
	}
}

func TestDrawList_Merge(t *testing.T) {
	dl := NewDrawList()
	dl.Append(Lines, 2)
	dl.Append(Lines, 2)
	dl.Append(Triangles, 6)
	dl.Append(Triangles, 6)
	dl.Append(Lines, 2)

	want := []DrawCall{
		{Triangles, 0},
		{Lines, 4},
		{Triangles, 12},
		{Lines, 2},
	}
	if got := dl.Calls(); !reflect.DeepEqual(got, want) {
		t.Errorf("Calls() = %v, want %v", got, want)
	}
	if dl.Total() != 18 {
		t.Errorf("Total() = %d, want 18", dl.Total())
	}
}

func TestDrawList_LeadingTrianglesMergeIntoInitialRun(t *testing.T) {
	dl := NewDrawList()
	dl.Append(Triangles, 6)
	if got := dl.Calls(); len(got) != 1 || got[0].Count != 6 {
		t.Errorf("Calls() = %v, want single triangles run of 6", got)
	}
}

func TestDrawList_RunCountMatchesTopologySwitches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		dl := NewDrawList()
		prev := Triangles
		switches, total := 0, 0
		for n := rng.Intn(40); n > 0; n-- {
			topo := Topology(rng.Intn(2))
			count := rng.Intn(7)
			if topo != prev {
				switches++
				prev = topo
			}
			total += count
			dl.Append(topo, count)
		}
		if dl.Len() != switches+1 {
			t.Fatalf("iter %d: Len() = %d, want %d", iter, dl.Len(), switches+1)
		}
		if dl.Total() != total {
			t.Fatalf("iter %d: Total() = %d, want %d", iter, dl.Total(), total)
		}
	}
}

func TestDrawList_Retract(t *testing.T) {
	dl := NewDrawList()
	dl.Append(Lines, 2)
	dl.Append(Triangles, 12)
	dl.Retract(6)
	if got := dl.Calls()[2]; got.Count != 6 {
		t.Errorf("after Retract(6): %v", got)
	}
	dl.Retract(100)
	if got := dl.Calls()[2]; got.Count != 0 {
		t.Errorf("Retract should clamp at zero, got %v", got)
	}
	if got := dl.Calls()[1]; got.Count != 2 {
		t.Errorf("Retract touched an earlier run: %v", got)
	}
}

func TestDrawList_Replay(t *testing.T) {
	dl := NewDrawList()
	dl.Append(Lines, 2)
	dl.Append(Triangles, 6)
	dl.Append(Triangles, 0)
	dl.Append(Lines, 0)
	dl.Append(Triangles, 6)

	type call struct {
		t            Topology
		start, count int
	}
	var got []call
	dl.Replay(func(t Topology, start, count int) {
		got = append(got, call{t, start, count})
	})
	want := []call{
		{Lines, 0, 2},
		{Triangles, 2, 6},
		{Triangles, 8, 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Replay = %v, want %v", got, want)
	}
}
