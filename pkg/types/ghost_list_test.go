package types

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGhosts creates one ghost per likelihood, in order, with types
// taken from names.
func newTestGhosts(t *testing.T, names []string, likelihoods []float64) []*Ghost {
	t.Helper()
	require.Equal(t, len(names), len(likelihoods))
	ids := NewIDAllocator(GhostInitialID)
	out := make([]*Ghost, len(names))
	for i, name := range names {
		g, err := NewGhost(ids, name)
		require.NoError(t, err)
		g.likelihood = likelihoods[i]
		out[i] = g
	}
	return out
}

func typesOf(gs []*Ghost) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Type()
	}
	return out
}

func TestGhostListAppend(t *testing.T) {
	var list GhostList
	assert.Zero(t, list.Len())
	assert.Nil(t, list.nodes.head)
	assert.Nil(t, list.nodes.tail)

	gs := newTestGhosts(t, []string{"FirstGhost", "SecondGhost", "ThirdGhost"}, []float64{0, 0, 0})

	list.Append(gs[0])
	require.NotNil(t, list.nodes.head)
	assert.Same(t, list.nodes.head, list.nodes.tail, "single node is both head and tail")

	list.Append(gs[1])
	list.Append(gs[2])
	assert.Equal(t, 3, list.Len())
	assert.Same(t, gs[2], list.nodes.tail.value)
	assert.Equal(t, []string{"FirstGhost", "SecondGhost", "ThirdGhost"}, typesOf(list.Ghosts()))

	list.Append(nil)
	assert.Equal(t, 3, list.Len(), "nil append is a no-op")
}

func TestInsertSorted(t *testing.T) {
	tests := []struct {
		name        string
		types       []string
		likelihoods []float64
		want        []string
	}{
		{
			name:        "ties place new before old",
			types:       []string{"A", "B", "C", "D"},
			likelihoods: []float64{50, 90, 10, 50},
			want:        []string{"B", "D", "A", "C"},
		},
		{
			name:        "ascending input reverses",
			types:       []string{"A", "B", "C"},
			likelihoods: []float64{1, 2, 3},
			want:        []string{"C", "B", "A"},
		},
		{
			name:        "descending input keeps order",
			types:       []string{"A", "B", "C"},
			likelihoods: []float64{3, 2, 1},
			want:        []string{"A", "B", "C"},
		},
		{
			name:        "equal to head becomes head",
			types:       []string{"A", "B"},
			likelihoods: []float64{40, 40},
			want:        []string{"B", "A"},
		},
		{
			name:        "equal to a middle entry goes before it",
			types:       []string{"A", "B", "C", "D"},
			likelihoods: []float64{90, 50, 10, 50},
			want:        []string{"A", "D", "B", "C"},
		},
		{
			name:        "negative and large values",
			types:       []string{"A", "B", "C"},
			likelihoods: []float64{-5, 250, 0},
			want:        []string{"B", "C", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var view GhostView
			for _, g := range newTestGhosts(t, tt.types, tt.likelihoods) {
				view.InsertSorted(g)
			}
			assert.Equal(t, tt.want, typesOf(view.Ghosts()))
			assert.Equal(t, len(tt.want), view.Len())
			assert.Equal(t, tt.want[len(tt.want)-1], view.nodes.tail.value.Type(), "tail tracks the last node")
		})
	}
}

func TestInsertSortedKeepsDescendingOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	names := make([]string, 200)
	likelihoods := make([]float64, 200)
	for i := range names {
		names[i] = "G"
		// Coarse values force plenty of ties.
		likelihoods[i] = float64(r.Intn(20)) * 5
	}

	var view GhostView
	var list GhostList
	for _, g := range newTestGhosts(t, names, likelihoods) {
		view.InsertSorted(g)
		list.InsertSorted(g)
	}

	for _, gs := range [][]*Ghost{view.Ghosts(), list.Ghosts()} {
		require.Len(t, gs, 200)
		for i := 1; i < len(gs); i++ {
			if gs[i].Likelihood() > gs[i-1].Likelihood() {
				t.Fatalf("out of order at %d: %.2f after %.2f", i, gs[i].Likelihood(), gs[i-1].Likelihood())
			}
			if gs[i].Likelihood() == gs[i-1].Likelihood() && gs[i].ID() > gs[i-1].ID() {
				t.Fatalf("tie at %d not newest first: id %d after %d", i, gs[i].ID(), gs[i-1].ID())
			}
		}
	}
}

func TestGhostViewRemove(t *testing.T) {
	gs := newTestGhosts(t, []string{"A", "B", "C"}, []float64{30, 20, 10})
	var view GhostView
	for _, g := range gs {
		view.InsertSorted(g)
	}

	assert.True(t, view.Remove(gs[2]), "remove tail")
	assert.Same(t, gs[1], view.nodes.tail.value)

	assert.True(t, view.Remove(gs[0]), "remove head")
	assert.Same(t, gs[1], view.nodes.head.value)

	assert.False(t, view.Remove(gs[0]), "already removed")
	assert.False(t, view.Remove(nil))

	assert.True(t, view.Remove(gs[1]))
	assert.Zero(t, view.Len())
	assert.Nil(t, view.nodes.head)
	assert.Nil(t, view.nodes.tail)

	// Insertion after emptying works from a clean state.
	view.InsertSorted(gs[2])
	assert.Equal(t, []string{"C"}, typesOf(view.Ghosts()))
}

func TestGhostViewClearKeepsGhosts(t *testing.T) {
	gs := newTestGhosts(t, []string{"FirstGhost", "SecondGhost"}, []float64{10, 20})
	var view GhostView
	for _, g := range gs {
		view.InsertSorted(g)
	}

	view.Clear()
	assert.Zero(t, view.Len())
	assert.Nil(t, view.nodes.head)
	assert.Nil(t, view.nodes.tail)
	for _, g := range gs {
		assert.False(t, g.Released())
	}
	assert.Equal(t, "FirstGhost", gs[0].Type())
	assert.Equal(t, 20.0, gs[1].Likelihood())
}

func TestGhostListTeardownReleasesGhosts(t *testing.T) {
	gs := newTestGhosts(t, []string{"A", "B", "C"}, []float64{1, 2, 3})
	var list GhostList
	for _, g := range gs {
		list.Append(g)
	}

	require.NoError(t, list.Teardown())
	assert.Zero(t, list.Len())
	assert.Nil(t, list.nodes.head)
	for _, g := range gs {
		assert.True(t, g.Released())
	}

	t.Run("second owner reports double release", func(t *testing.T) {
		var again GhostList
		again.Append(gs[0])
		err := again.Teardown()
		assert.ErrorIs(t, err, ErrGhostReleased)
		assert.Zero(t, again.Len())
	})
}

func TestGhostListRender(t *testing.T) {
	gs := newTestGhosts(t, []string{"Banshee", "Wraith"}, []float64{82.51, 0})
	var list GhostList
	assert.Empty(t, list.Render())

	for _, g := range gs {
		list.Append(g)
	}
	want := "  - {id: 1031, type: Banshee, likelihood: 82.51%, room: Unknown}\n" +
		"  - {id: 1032, type: Wraith, likelihood: 0.00%, room: Unknown}\n"
	assert.Equal(t, want, list.Render())
}

func TestGhostListEachStops(t *testing.T) {
	gs := newTestGhosts(t, []string{"A", "B", "C"}, []float64{0, 0, 0})
	var list GhostList
	for _, g := range gs {
		list.Append(g)
	}

	var seen []string
	list.Each(func(g *Ghost) bool {
		seen = append(seen, g.Type())
		return g.Type() != "B"
	})
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.True(t, list.Contains(gs[2]))
}
