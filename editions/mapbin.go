package editions

import (
	"fmt"
	"strings"

	"github.com/knyttools/libks/mapbin"
)

// objectLayers is the first of the four object layers in a screen.
const objectLayers = 4

// checkMapBin scans every object layer for objects that only exist in a
// fork. A KS Plus object is conclusive; Advanced (bank 254) and ACO (bank
// 253) objects are tallied and the larger count wins, matching the ambiguity
// between the two forks' custom object banks.
func checkMapBin(screens []mapbin.Screen, fp *fingerprints) (Edition, Reason, bool) {
	advSeen := newTally()
	acoSeen := newTally()

	for _, screen := range screens {
		for _, layer := range screen.Layers[objectLayers:] {
			for _, tile := range layer {
				if tile.Index == 0 {
					continue
				}
				switch {
				case isPlusObject(tile, fp):
					return Plus, reasonf("Map.bin uses the KS Plus object %d:%d", tile.Bank, tile.Index), true
				case tile.Bank == 254 && tile.Index <= 22:
					advSeen.add(fmt.Sprintf("%d:%d", tile.Bank, tile.Index))
				case tile.Bank == 253 && tile.Index <= 6:
					acoSeen.add(fmt.Sprintf("%d:%d", tile.Bank, tile.Index))
				}
			}
		}
	}

	switch {
	case advSeen.count > acoSeen.count:
		return Advanced, reasonf("Map.bin uses these KS Advanced objects %d time(s): %s",
			advSeen.count, strings.Join(advSeen.keys, ", ")), true
	case acoSeen.count > 0:
		return AdvancedCustomObjects, reasonf("Map.bin uses these KS ACO objects %d time(s): %s",
			acoSeen.count, strings.Join(acoSeen.keys, ", ")), true
	}
	return Vanilla, Reason{}, false
}

func isPlusObject(tile mapbin.Tile, fp *fingerprints) bool {
	for _, r := range fp.plusObjectTiles {
		if r.contains(tile.Bank, tile.Index) {
			return true
		}
	}
	return false
}
