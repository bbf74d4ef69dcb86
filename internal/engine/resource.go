package engine

// Resource identifies the five tradeable resource kinds of the Tayrona economy.
type Resource string

const (
	ResourceGold   Resource = "gold"   // from the Sierra mountains
	ResourceStone  Resource = "stone"  // from the Canteras quarries
	ResourceCotton Resource = "cotton" // from the Tierras Altas highlands
	ResourceMaize  Resource = "maize"  // from the Valles
	ResourceWood   Resource = "wood"   // from the Selva jungle
)

// AllResources returns the five resource kinds in a fixed order.
func AllResources() []Resource {
	return []Resource{ResourceGold, ResourceStone, ResourceCotton, ResourceMaize, ResourceWood}
}

// ValidResource reports whether r names a real resource kind.
func ValidResource(r Resource) bool {
	switch r {
	case ResourceGold, ResourceStone, ResourceCotton, ResourceMaize, ResourceWood:
		return true
	}
	return false
}

// Terrain identifies the six hex terrain kinds.
type Terrain string

const (
	TerrainSierra       Terrain = "sierra"
	TerrainCanteras     Terrain = "canteras"
	TerrainTierrasAltas Terrain = "tierras_altas"
	TerrainValles       Terrain = "valles"
	TerrainSelva        Terrain = "selva"
	TerrainCeremonial   Terrain = "centro_ceremonial" // produces nothing; conquistador start
)

// Resource returns the resource a terrain produces. The ceremonial center
// produces nothing and returns false.
func (t Terrain) Resource() (Resource, bool) {
	switch t {
	case TerrainSierra:
		return ResourceGold, true
	case TerrainCanteras:
		return ResourceStone, true
	case TerrainTierrasAltas:
		return ResourceCotton, true
	case TerrainValles:
		return ResourceMaize, true
	case TerrainSelva:
		return ResourceWood, true
	}
	return "", false
}

// Building identifies the three construction kinds.
type Building string

const (
	BuildingNone   Building = ""
	BuildingCamino Building = "camino" // road on an edge
	BuildingBohio  Building = "bohio"  // settlement on a vertex
	BuildingTemplo Building = "templo" // temple upgrade of a bohio
)

// PortKind identifies a trade port on a coastal vertex. A resource-specific
// port trades 2:1 in its resource; a general port trades 3:1.
type PortKind string

const (
	PortNone    PortKind = ""
	PortGeneral PortKind = "general"
	PortGold    PortKind = "gold"
	PortStone   PortKind = "stone"
	PortCotton  PortKind = "cotton"
	PortMaize   PortKind = "maize"
	PortWood    PortKind = "wood"
)

// ResourceSet is a multiset of resources. Counts are never negative on any
// set reachable through engine operations.
type ResourceSet map[Resource]int

// NewResourceSet returns an empty set.
func NewResourceSet() ResourceSet {
	return make(ResourceSet)
}

// Clone returns a deep copy, dropping zero entries.
func (s ResourceSet) Clone() ResourceSet {
	out := make(ResourceSet, len(s))
	for r, n := range s {
		if n != 0 {
			out[r] = n
		}
	}
	return out
}

// Total returns the number of cards in the set.
func (s ResourceSet) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Covers reports whether s contains at least the amounts in cost.
func (s ResourceSet) Covers(cost ResourceSet) bool {
	for r, n := range cost {
		if s[r] < n {
			return false
		}
	}
	return true
}

// Add adds every count in other to s.
func (s ResourceSet) Add(other ResourceSet) {
	for r, n := range other {
		s[r] += n
	}
}

// Sub removes the amounts in other from s. Callers must check Covers first;
// Sub reports false and leaves s unchanged if the removal would go negative.
func (s ResourceSet) Sub(other ResourceSet) bool {
	if !s.Covers(other) {
		return false
	}
	for r, n := range other {
		s[r] -= n
		if s[r] == 0 {
			delete(s, r)
		}
	}
	return true
}

// Grant adds n of a single resource.
func (s ResourceSet) Grant(r Resource, n int) {
	s[r] += n
}

// Equal reports whether both sets hold identical counts.
func (s ResourceSet) Equal(other ResourceSet) bool {
	if s.Total() != other.Total() {
		return false
	}
	for r, n := range other {
		if s[r] != n {
			return false
		}
	}
	return true
}

// Flatten expands the set into one entry per card, in fixed resource order.
func (s ResourceSet) Flatten() []Resource {
	var out []Resource
	for _, r := range AllResources() {
		for i := 0; i < s[r]; i++ {
			out = append(out, r)
		}
	}
	return out
}

// Construction costs of the three building kinds.
var buildingCosts = map[Building]ResourceSet{
	BuildingCamino: {ResourceStone: 1, ResourceWood: 1},
	BuildingBohio:  {ResourceStone: 1, ResourceWood: 1, ResourceCotton: 1, ResourceMaize: 1},
	BuildingTemplo: {ResourceGold: 3, ResourceMaize: 2},
}

// Cost of drawing one wisdom card.
var wisdomCardCost = ResourceSet{ResourceGold: 1, ResourceCotton: 1, ResourceMaize: 1}

// BuildingCost returns a copy of the cost of the given building kind.
func BuildingCost(b Building) ResourceSet {
	return buildingCosts[b].Clone()
}

// WisdomCardCost returns a copy of the wisdom card price.
func WisdomCardCost() ResourceSet {
	return wisdomCardCost.Clone()
}
