package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPosition ComponentID = iota
	testVelocity
	testHealth
)

type testPos struct{ X, Y float64 }
type testVel struct{ DX, DY float64 }
type testHP struct{ Current int }

func TestCreateEntityAllocatesUniqueIDs(t *testing.T) {
	m := NewEntityManager()

	a := m.CreateEntity()
	b := m.CreateEntity()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, NoEntity, a)
	assert.True(t, m.Alive(a))
	assert.True(t, m.Alive(b))
	assert.Equal(t, 2, m.EntityCount())
}

func TestIDsAreNeverReused(t *testing.T) {
	m := NewEntityManager()

	seen := make(map[EntityID]bool)
	for i := 0; i < 100; i++ {
		id := m.CreateEntity()
		require.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
		m.DestroyEntity(id)
	}
}

func TestDestroyEntityEvictsAllComponents(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.AddComponent(id, testPosition, &testPos{X: 1})
	m.AddComponent(id, testVelocity, &testVel{DX: 2})

	m.DestroyEntity(id)

	assert.False(t, m.Alive(id))
	assert.False(t, m.HasComponent(id, testPosition))
	assert.False(t, m.HasComponent(id, testVelocity))
	_, ok := m.GetComponent(id, testPosition)
	assert.False(t, ok)
}

func TestDestroyEntityIsIdempotent(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()

	m.DestroyEntity(id)
	assert.NotPanics(t, func() {
		m.DestroyEntity(id)
		m.DestroyEntity(EntityID(9999))
	})
	assert.Equal(t, 0, m.EntityCount())
}

func TestStaleIDLookupsFailSafely(t *testing.T) {
	m := NewEntityManager()
	stale := m.CreateEntity()
	m.AddComponent(stale, testPosition, &testPos{X: 5})
	m.DestroyEntity(stale)

	// A new entity must not be visible through the stale id
	fresh := m.CreateEntity()
	m.AddComponent(fresh, testPosition, &testPos{X: 7})

	assert.NotEqual(t, stale, fresh)
	_, ok := m.GetComponent(stale, testPosition)
	assert.False(t, ok)
	assert.False(t, m.HasComponent(stale, testPosition))
}

func TestAddComponentToDeadEntityIsIgnored(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.DestroyEntity(id)

	m.AddComponent(id, testPosition, &testPos{})

	assert.False(t, m.HasComponent(id, testPosition))
	assert.Empty(t, m.Query(testPosition))
}

func TestRemoveComponent(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.AddComponent(id, testPosition, &testPos{})
	m.AddComponent(id, testVelocity, &testVel{})

	m.RemoveComponent(id, testVelocity)

	assert.True(t, m.HasComponent(id, testPosition))
	assert.False(t, m.HasComponent(id, testVelocity))
}

func TestGetComponentReturnsMutableComponent(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.AddComponent(id, testPosition, &testPos{X: 1})

	c, ok := m.GetComponent(id, testPosition)
	require.True(t, ok)
	c.(*testPos).X = 42

	c2, ok := m.GetComponent(id, testPosition)
	require.True(t, ok)
	assert.Equal(t, 42.0, c2.(*testPos).X)
}

func TestQueryIntersectsAllStores(t *testing.T) {
	m := NewEntityManager()

	both := m.CreateEntity()
	m.AddComponent(both, testPosition, &testPos{})
	m.AddComponent(both, testVelocity, &testVel{})

	posOnly := m.CreateEntity()
	m.AddComponent(posOnly, testPosition, &testPos{})

	velOnly := m.CreateEntity()
	m.AddComponent(velOnly, testVelocity, &testVel{})

	assert.Equal(t, []EntityID{both}, m.Query(testPosition, testVelocity))
	assert.ElementsMatch(t, []EntityID{both, posOnly}, m.Query(testPosition))
}

func TestQueryEmptyCases(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.AddComponent(id, testPosition, &testPos{})

	assert.Empty(t, m.Query())
	assert.Empty(t, m.Query(testVelocity))
	assert.Empty(t, m.Query(testPosition, testHealth))
}

func TestQueryResultsAreSortedByID(t *testing.T) {
	m := NewEntityManager()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := m.CreateEntity()
		m.AddComponent(id, testPosition, &testPos{})
		want = append(want, id)
	}

	got := m.Query(testPosition)
	assert.Equal(t, want, got)
}

func TestQueryIsASnapshot(t *testing.T) {
	m := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 10; i++ {
		id := m.CreateEntity()
		m.AddComponent(id, testPosition, &testPos{})
		ids = append(ids, id)
	}

	got := m.Query(testPosition)
	// Destroying mid-iteration must not disturb the materialized result
	visited := 0
	for _, id := range got {
		m.DestroyEntity(id)
		visited++
	}
	assert.Equal(t, len(ids), visited)
	assert.Equal(t, 0, m.EntityCount())
}

func TestQueueDestroyDefersUntilFlush(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()
	m.AddComponent(id, testPosition, &testPos{})

	m.QueueDestroy(id)
	assert.True(t, m.Alive(id), "queued destruction must not apply immediately")

	destroyed := m.FlushDestroyed()
	assert.Equal(t, 1, destroyed)
	assert.False(t, m.Alive(id))
}

func TestFlushDestroyedDeduplicates(t *testing.T) {
	m := NewEntityManager()
	id := m.CreateEntity()

	m.QueueDestroy(id)
	m.QueueDestroy(id)
	m.QueueDestroy(EntityID(12345)) // never existed

	assert.Equal(t, 1, m.FlushDestroyed())
	assert.Equal(t, 0, m.FlushDestroyed(), "queue must be empty after a flush")
}
