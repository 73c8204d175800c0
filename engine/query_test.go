package engine

import (
	"testing"

	"github.com/lixenwraith/snek3d/component"
)

// TestQueryBuilder verifies intersection and exclusion
func TestQueryBuilder(t *testing.T) {
	w := NewWorld()
	c := w.Components

	seg := w.CreateEntity()
	c.Segment.Set(seg, component.SegmentComponent{})
	c.Placement.Set(seg, component.PlacementComponent{})

	apple := w.CreateEntity()
	c.Apple.Set(apple, component.AppleComponent{})
	c.Placement.Set(apple, component.PlacementComponent{})

	wall := w.CreateEntity()
	c.Wall.Set(wall, component.WallComponent{})
	c.Placement.Set(wall, component.PlacementComponent{})

	orphan := w.CreateEntity()
	c.Segment.Set(orphan, component.SegmentComponent{})

	results := w.Query().With(c.Segment).With(c.Placement).Execute()
	if len(results) != 1 || results[0] != seg {
		t.Errorf("Expected [%d], got %v", seg, results)
	}

	others := w.Query().
		With(c.Placement).
		Without(c.Segment).
		Without(c.Apple).
		Execute()
	if len(others) != 1 || others[0] != wall {
		t.Errorf("Expected [%d], got %v", wall, others)
	}

	if got := w.Query().Execute(); len(got) != 0 {
		t.Errorf("Expected empty result for empty query, got %v", got)
	}
}

func TestQueryBuilder_CachedResult(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Apple.Set(e, component.AppleComponent{})

	q := w.Query().With(w.Components.Apple)
	first := q.Execute()

	w.Components.Apple.Set(w.CreateEntity(), component.AppleComponent{})
	second := q.Execute()

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("Expected cached single result, got %d then %d", len(first), len(second))
	}
}

// TestQueryBuilder_Panic verifies modification after Execute panics
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld()
	q := w.Query().With(w.Components.Segment)
	q.Execute()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()
	q.With(w.Components.Placement)
}
