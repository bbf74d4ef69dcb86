package engine

import (
	"fmt"
	"math/rand/v2"
)

// Hex is one terrain tile. Token is the production number (2-12, never 7);
// zero for the ceremonial center. Structurally immutable after generation —
// the conquistador position lives on the Game, not here.
type Hex struct {
	ID      int     `json:"id"`
	Terrain Terrain `json:"terrain"`
	Token   int     `json:"token,omitempty"`
	Q       int     `json:"q"`
	R       int     `json:"r"`
}

// Vertex is a corner where up to three hexes meet. X/Y are lattice
// coordinates used to rebuild adjacency after deserialization.
type Vertex struct {
	ID       int      `json:"id"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Building Building `json:"building,omitempty"`
	Owner    string   `json:"owner,omitempty"`
	Port     PortKind `json:"port,omitempty"`
}

// Edge connects exactly two vertices. A placed camino never moves.
type Edge struct {
	ID    int    `json:"id"`
	A     int    `json:"a"`
	B     int    `json:"b"`
	Owner string `json:"owner,omitempty"`
}

// Board owns the flat hex/vertex/edge tables and their adjacency indexes.
// Cross-references are integer ids rather than pointers, so the cyclic
// adjacency graph serializes as plain tables.
type Board struct {
	Hexes    []Hex    `json:"hexes"`
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`

	// Derived indexes, rebuilt by reindex(). Not serialized.
	hexVertices [][]int
	vertexHexes [][]int
	vertexEdges [][]int
}

// Standard 19-hex terrain pool: 4 selva, 4 canteras, 4 valles,
// 3 tierras altas, 3 sierra, 1 ceremonial center.
var terrainPool = []Terrain{
	TerrainSelva, TerrainSelva, TerrainSelva, TerrainSelva,
	TerrainCanteras, TerrainCanteras, TerrainCanteras, TerrainCanteras,
	TerrainValles, TerrainValles, TerrainValles, TerrainValles,
	TerrainTierrasAltas, TerrainTierrasAltas, TerrainTierrasAltas,
	TerrainSierra, TerrainSierra, TerrainSierra,
	TerrainCeremonial,
}

// Production number tokens for the 18 producing hexes. No 7: that total
// belongs to the conquistador.
var numberTokens = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// Axial positions of the 19 hexes: center, inner ring, outer ring.
var hexPositions = [][2]int{
	{0, 0},
	{1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1},
	{2, -2}, {2, -1}, {2, 0}, {1, 1}, {0, 2}, {-1, 2},
	{-2, 2}, {-2, 1}, {-2, 0}, {-1, -1}, {0, -2}, {1, -2},
}

// Port pool: four general ports plus one per resource.
var portPool = []PortKind{
	PortGeneral, PortGeneral, PortGeneral, PortGeneral,
	PortGold, PortStone, PortCotton, PortMaize, PortWood,
}

const portCount = 9

// Corner offsets around a hex center on the vertex lattice, in clockwise
// perimeter order. A hex at axial (q,r) has its center at (4q+2r, 3r);
// neighboring hexes land on the same lattice points for shared corners.
var cornerOffsets = [6][2]int{
	{0, -2}, {2, -1}, {2, 1}, {0, 2}, {-2, 1}, {-2, -1},
}

func hexCenter(q, r int) (int, int) {
	return 4*q + 2*r, 3 * r
}

// GenerateBoard builds the fixed board graph, shuffling terrains, number
// tokens, and port kinds with rng. When balanced is set, the token
// permutation is redrawn until no two of {6,8} sit on adjacent hexes.
// Returns the board and the id of the ceremonial hex (conquistador start).
func GenerateBoard(rng *rand.Rand, balanced bool) (*Board, int) {
	terrains := make([]Terrain, len(terrainPool))
	copy(terrains, terrainPool)
	rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})

	b := &Board{}
	ceremonial := 0
	for {
		tokens := make([]int, len(numberTokens))
		copy(tokens, numberTokens)
		rng.Shuffle(len(tokens), func(i, j int) {
			tokens[i], tokens[j] = tokens[j], tokens[i]
		})

		b.Hexes = b.Hexes[:0]
		next := 0
		for i, pos := range hexPositions {
			h := Hex{ID: i, Terrain: terrains[i], Q: pos[0], R: pos[1]}
			if h.Terrain == TerrainCeremonial {
				ceremonial = i
			} else {
				h.Token = tokens[next]
				next++
			}
			b.Hexes = append(b.Hexes, h)
		}

		if !balanced || !hasHotTokenCluster(b.Hexes) {
			break
		}
	}

	b.buildGraph()
	b.placePorts(rng)
	b.reindex()
	return b, ceremonial
}

// hasHotTokenCluster reports whether two high-frequency tokens (6 or 8)
// ended up on adjacent hexes.
func hasHotTokenCluster(hexes []Hex) bool {
	hot := func(h Hex) bool { return h.Token == 6 || h.Token == 8 }
	for i, a := range hexes {
		if !hot(a) {
			continue
		}
		for _, c := range hexes[i+1:] {
			if hot(c) && hexDistance(a, c) == 1 {
				return true
			}
		}
	}
	return false
}

func hexDistance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs((-a.Q - a.R) - (-b.Q - b.R))
	return max(dq, max(dr, ds))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// buildGraph interns the shared corner vertices and perimeter edges of every
// hex into the flat tables. Vertex and edge ids are assigned in hex order, so
// generation is deterministic for a given hex layout.
func (b *Board) buildGraph() {
	type point struct{ x, y int }
	type pair struct{ a, b int }

	vertexAt := make(map[point]int)
	edgeAt := make(map[pair]int)

	for _, h := range b.Hexes {
		cx, cy := hexCenter(h.Q, h.R)
		corners := make([]int, 6)
		for i, off := range cornerOffsets {
			p := point{cx + off[0], cy + off[1]}
			id, ok := vertexAt[p]
			if !ok {
				id = len(b.Vertices)
				vertexAt[p] = id
				b.Vertices = append(b.Vertices, Vertex{ID: id, X: p.x, Y: p.y})
			}
			corners[i] = id
		}
		for i := range corners {
			a, c := corners[i], corners[(i+1)%6]
			key := pair{min(a, c), max(a, c)}
			if _, ok := edgeAt[key]; !ok {
				id := len(b.Edges)
				edgeAt[key] = id
				b.Edges = append(b.Edges, Edge{ID: id, A: key.a, B: key.b})
			}
		}
	}
}

// placePorts spreads the nine port kinds over the coastline. Coastal edges
// (edges touching exactly one hex) are walked in id order and every third-ish
// edge donates its two endpoints as a port pair.
func (b *Board) placePorts(rng *rand.Rand) {
	kinds := make([]PortKind, len(portPool))
	copy(kinds, portPool)
	rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	coast := b.coastalEdges()
	for i := 0; i < portCount && len(coast) > 0; i++ {
		e := b.Edges[coast[i*len(coast)/portCount]]
		b.Vertices[e.A].Port = kinds[i]
		b.Vertices[e.B].Port = kinds[i]
	}
}

// coastalEdges returns ids of edges bordered by exactly one hex, ascending.
func (b *Board) coastalEdges() []int {
	counts := make([]int, len(b.Edges))
	for _, h := range b.Hexes {
		cx, cy := hexCenter(h.Q, h.R)
		corners := make([]int, 6)
		for i, off := range cornerOffsets {
			corners[i] = b.vertexIDAt(cx+off[0], cy+off[1])
		}
		for i := range corners {
			if id := b.edgeIDBetween(corners[i], corners[(i+1)%6]); id >= 0 {
				counts[id]++
			}
		}
	}
	var coast []int
	for id, n := range counts {
		if n == 1 {
			coast = append(coast, id)
		}
	}
	return coast
}

func (b *Board) vertexIDAt(x, y int) int {
	for _, v := range b.Vertices {
		if v.X == x && v.Y == y {
			return v.ID
		}
	}
	return -1
}

func (b *Board) edgeIDBetween(a, c int) int {
	lo, hi := min(a, c), max(a, c)
	for _, e := range b.Edges {
		if e.A == lo && e.B == hi {
			return e.ID
		}
	}
	return -1
}

// reindex rebuilds the derived adjacency indexes from the flat tables. Must
// be called after generation and after restoring a serialized board.
func (b *Board) reindex() {
	b.hexVertices = make([][]int, len(b.Hexes))
	b.vertexHexes = make([][]int, len(b.Vertices))
	b.vertexEdges = make([][]int, len(b.Vertices))

	for _, h := range b.Hexes {
		cx, cy := hexCenter(h.Q, h.R)
		for _, off := range cornerOffsets {
			v := b.vertexIDAt(cx+off[0], cy+off[1])
			b.hexVertices[h.ID] = append(b.hexVertices[h.ID], v)
			b.vertexHexes[v] = append(b.vertexHexes[v], h.ID)
		}
	}
	for _, e := range b.Edges {
		b.vertexEdges[e.A] = append(b.vertexEdges[e.A], e.ID)
		b.vertexEdges[e.B] = append(b.vertexEdges[e.B], e.ID)
	}
}

// HexVertices returns the six corner vertex ids of a hex.
func (b *Board) HexVertices(hexID int) []int {
	return b.hexVertices[hexID]
}

// VertexHexes returns the ids of the 1-3 hexes meeting at a vertex.
func (b *Board) VertexHexes(vertexID int) []int {
	return b.vertexHexes[vertexID]
}

// VertexEdges returns the ids of the 2-3 edges incident to a vertex.
func (b *Board) VertexEdges(vertexID int) []int {
	return b.vertexEdges[vertexID]
}

// EdgeVertices returns both endpoint vertex ids of an edge.
func (b *Board) EdgeVertices(edgeID int) (int, int) {
	e := b.Edges[edgeID]
	return e.A, e.B
}

// ValidHex reports whether id names a hex on this board.
func (b *Board) ValidHex(id int) bool {
	return id >= 0 && id < len(b.Hexes)
}

// ValidVertex reports whether id names a vertex on this board.
func (b *Board) ValidVertex(id int) bool {
	return id >= 0 && id < len(b.Vertices)
}

// ValidEdge reports whether id names an edge on this board.
func (b *Board) ValidEdge(id int) bool {
	return id >= 0 && id < len(b.Edges)
}

// TouchesRoadNetwork reports whether the vertex has at least one incident
// edge carrying a camino of the given owner.
func (b *Board) TouchesRoadNetwork(vertexID int, owner string) bool {
	for _, eid := range b.vertexEdges[vertexID] {
		if b.Edges[eid].Owner == owner {
			return true
		}
	}
	return false
}

// EdgeConnects reports whether the edge touches the owner's road network or
// one of the owner's buildings at either endpoint.
func (b *Board) EdgeConnects(edgeID int, owner string) bool {
	e := b.Edges[edgeID]
	for _, v := range [2]int{e.A, e.B} {
		vert := b.Vertices[v]
		if vert.Building != BuildingNone && vert.Owner == owner {
			return true
		}
		for _, other := range b.vertexEdges[v] {
			if other != edgeID && b.Edges[other].Owner == owner {
				return true
			}
		}
	}
	return false
}

// OwnsPort reports whether the owner has a building on a vertex with the
// given port kind.
func (b *Board) OwnsPort(owner string, kind PortKind) bool {
	for _, v := range b.Vertices {
		if v.Port == kind && v.Building != BuildingNone && v.Owner == owner {
			return true
		}
	}
	return false
}

// BuildingsOf counts the owner's bohios and templos.
func (b *Board) BuildingsOf(owner string) (bohios, templos int) {
	for _, v := range b.Vertices {
		if v.Owner != owner {
			continue
		}
		switch v.Building {
		case BuildingBohio:
			bohios++
		case BuildingTemplo:
			templos++
		}
	}
	return
}

// RoadsOf returns the ids of edges carrying the owner's caminos.
func (b *Board) RoadsOf(owner string) []int {
	var out []int
	for _, e := range b.Edges {
		if e.Owner == owner {
			out = append(out, e.ID)
		}
	}
	return out
}

// checkDegrees validates the structural limits of the generated graph:
// every vertex has 2-3 incident edges and 1-3 adjacent hexes. Used by the
// invariant sweep.
func (b *Board) checkDegrees() error {
	for _, v := range b.Vertices {
		if n := len(b.vertexEdges[v.ID]); n < 2 || n > 3 {
			return fmt.Errorf("vertex %d has %d incident edges", v.ID, n)
		}
		if n := len(b.vertexHexes[v.ID]); n < 1 || n > 3 {
			return fmt.Errorf("vertex %d touches %d hexes", v.ID, n)
		}
	}
	return nil
}
