package genregionmap

import "github.com/Flokey82/go_gens/genlanguage"

// nameContinents generates a fantasy language per continent and derives
// the continent and region names from it. Languages are seeded from the
// map seed and the continent id, so names reproduce with the map.
func (m *Map) nameContinents() {
	for _, cont := range m.Continents {
		lang := genlanguage.GenLanguage(m.Seed + int64(cont.ID))
		cont.Name = lang.MakeName()
		for _, r := range cont.Regions {
			m.Regions[r].Name = lang.MakeCityName()
		}
	}
}
