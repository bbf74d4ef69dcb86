package engine

// CardKind identifies the five wisdom card kinds. The set is closed: every
// kind has exactly one resolver in wisdom.go.
type CardKind string

const (
	CardGuerreroNaoma   CardKind = "guerrero_naoma"   // warrior: relocate the conquistador, steal
	CardAbundancia      CardKind = "abundancia"       // bounty: take any 2 resources
	CardSabiduriaMama   CardKind = "sabiduria_mama"   // monopoly: collect one resource kind from all
	CardNuevosCaminos   CardKind = "nuevos_caminos"   // free roads: place 2 caminos at no cost
	CardAvanceAncestral CardKind = "avance_ancestral" // hidden point: 1 VP, counted at victory check
)

// ValidCard reports whether k names a real card kind.
func ValidCard(k CardKind) bool {
	switch k {
	case CardGuerreroNaoma, CardAbundancia, CardSabiduriaMama, CardNuevosCaminos, CardAvanceAncestral:
		return true
	}
	return false
}

// deckDistribution is the composition of a fresh 25-card wisdom deck.
var deckDistribution = map[CardKind]int{
	CardGuerreroNaoma:   14,
	CardAbundancia:      2,
	CardSabiduriaMama:   2,
	CardNuevosCaminos:   2,
	CardAvanceAncestral: 5,
}
