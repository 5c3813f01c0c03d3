package depot

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/TheBitDrifter/bark"
)

// ArchetypeIndex owns every archetype created by a world, keyed by signature, and caches which
// archetypes match a query descriptor.
//
// Archetypes are never removed. Registering a new archetype evicts every cached descriptor the
// archetype satisfies, so cached results never miss an archetype.
type ArchetypeIndex struct {
	nextID                archetypeID
	asSlice               []*Archetype
	idsGroupedBySignature map[Signature]archetypeID
	matches               Cache[Filter, []*Archetype]
	chunkCapacity         int
	logger                *slog.Logger
}

func newArchetypeIndex(chunkCapacity, maxCachedQueries int) *ArchetypeIndex {
	return &ArchetypeIndex{
		nextID:                1,
		idsGroupedBySignature: make(map[Signature]archetypeID),
		matches:               FactoryNewCache[Filter, []*Archetype](maxCachedQueries),
		chunkCapacity:         chunkCapacity,
		logger:                bark.For(logIndex),
	}
}

// Get returns the archetype registered for signature, if any.
func (idx *ArchetypeIndex) Get(signature Signature) (*Archetype, bool) {
	id, found := idx.idsGroupedBySignature[signature]
	if !found {
		return nil, false
	}
	return idx.asSlice[id-1], true
}

// GetOrCreate returns the archetype for signature, creating and registering it on first use.
func (idx *ArchetypeIndex) GetOrCreate(signature Signature) *Archetype {
	if arch, found := idx.Get(signature); found {
		return arch
	}

	created := newArchetype(idx.nextID, signature, idx.chunkCapacity)
	idx.asSlice = append(idx.asSlice, created)
	idx.idsGroupedBySignature[signature] = idx.nextID
	idx.nextID++
	if int(created.id) != len(idx.asSlice) {
		fatal("archetype id %d registered at position %d", created.id, len(idx.asSlice))
	}

	evicted := idx.matches.Evict(func(f Filter, _ []*Archetype) bool {
		return f.Matches(created)
	})
	idx.logger.Debug("archetype created",
		bark.KeyOperation, "get_or_create",
		"archetype", created.id,
		"signature", signature,
		"evicted_queries", evicted,
	)
	return created
}

// GetMatchingArchetypes returns, in creation order, every archetype holding all components of
// with and none of without. The result is a snapshot: archetypes created later are not added to
// it, so callers must ask again after structural changes.
func (idx *ArchetypeIndex) GetMatchingArchetypes(with, without Signature) []*Archetype {
	return idx.matching(FilterOf(with, without))
}

func (idx *ArchetypeIndex) matching(f Filter) []*Archetype {
	if cached, hit := idx.matches.Get(f); hit {
		return cached
	}
	result := make([]*Archetype, 0)
	for _, arch := range idx.asSlice {
		if f.Matches(arch) {
			result = append(result, arch)
		}
	}
	result = slices.Clip(result)
	if err := idx.matches.Register(f, result); err != nil {
		idx.logger.Debug("query result not cached",
			bark.KeyOperation, "get_matching_archetypes",
			bark.KeyError, err,
		)
	}
	return result
}

// transition returns the archetype an entity of src moves to when c is added (or removed).
func (idx *ArchetypeIndex) transition(src *Archetype, c Component, add bool) *Archetype {
	bit := bitFor(c)
	edgeSet := src.edges.remove
	if add {
		edgeSet = src.edges.add
	}
	if dst, ok := edgeSet[bit]; ok {
		return dst
	}
	target := src.signature.Remove(c)
	if add {
		target = src.signature.Add(c)
	}
	dst := idx.GetOrCreate(target)
	edgeSet[bit] = dst
	return dst
}

// Len returns the number of registered archetypes.
func (idx *ArchetypeIndex) Len() int {
	return len(idx.asSlice)
}

// Archetypes yields every registered archetype in creation order.
func (idx *ArchetypeIndex) Archetypes() iter.Seq[*Archetype] {
	return slices.Values(idx.asSlice)
}

// CachedQueries returns the number of query descriptors currently cached.
func (idx *ArchetypeIndex) CachedQueries() int {
	return idx.matches.Len()
}
