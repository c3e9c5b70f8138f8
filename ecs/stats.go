package ecs

import (
	"reflect"
	"slices"
)

// StorageStats describes the population of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	SingletonTypes     []string
	ArchetypeBreakdown []ArchetypeStats
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []reflect.Type
	EntityCount    int
}

// CollectStats walks every archetype and counts live entities.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArchetypeCount: len(s.order),
		SingletonCount: s.singletons.Len(),
	}
	s.singletons.ForEach(func(_ uintptr, entry *singletonEntry) bool {
		stats.SingletonTypes = append(stats.SingletonTypes, entry.typ.String())
		return true
	})
	slices.Sort(stats.SingletonTypes)

	for _, a := range s.order {
		n := a.Len()
		stats.TotalEntityCount += n
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             a.id,
			ComponentTypes: a.types,
			EntityCount:    n,
		})
	}
	return stats
}
