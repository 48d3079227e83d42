package editions

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed fingerprints.yaml
var fingerprintData []byte

type tileRange struct {
	Bank uint8 `yaml:"bank"`
	Lo   uint8 `yaml:"lo"`
	Hi   uint8 `yaml:"hi"`
}

func (r tileRange) contains(bank, index uint8) bool {
	return bank == r.Bank && index >= r.Lo && index <= r.Hi
}

type fingerprintFile struct {
	Plus struct {
		Sections      []string    `yaml:"sections"`
		WorldProps    []string    `yaml:"world_props"`
		ObjectProps   []string    `yaml:"object_props"`
		ScreenProps   []string    `yaml:"screen_props"`
		IconOverrides []string    `yaml:"icon_overrides"`
		ObjectTiles   []tileRange `yaml:"object_tiles"`
	} `yaml:"plus"`
	Extended struct {
		Sections []string `yaml:"sections"`
	} `yaml:"extended"`
	Advanced struct {
		WorldProps  []string `yaml:"world_props"`
		ScreenProps []string `yaml:"screen_props"`
	} `yaml:"advanced"`
	ACO struct {
		ObjectProps []string `yaml:"object_props"`
		ScreenProps []string `yaml:"screen_props"`
	} `yaml:"aco"`
	Flags struct {
		Props     []string `yaml:"props"`
		WarpProps []string `yaml:"warp_props"`
	} `yaml:"flags"`
	VanillaDirs []string `yaml:"vanilla_dirs"`
}

// fingerprints holds the fork feature lists with every name lowered and
// wrapped in a membership set.
type fingerprints struct {
	plusSections      []string
	extendedSections  []string
	plusWorldProps    smallSet
	plusObjectProps   smallSet
	plusScreenProps   smallSet
	plusIconOverrides smallSet
	plusObjectTiles   []tileRange
	advWorldProps     smallSet
	advScreenProps    smallSet
	acoObjectProps    smallSet
	acoScreenProps    smallSet
	flagProps         smallSet
	flagWarpProps     smallSet
	vanillaDirs       smallSet
}

var loadFingerprints = sync.OnceValue(func() *fingerprints {
	var file fingerprintFile
	if err := yaml.Unmarshal(fingerprintData, &file); err != nil {
		panic(fmt.Sprintf("editions: bad embedded fingerprints: %v", err))
	}
	return &fingerprints{
		plusSections:      file.Plus.Sections,
		extendedSections:  file.Extended.Sections,
		plusWorldProps:    newSmallSet(file.Plus.WorldProps),
		plusObjectProps:   newSmallSet(file.Plus.ObjectProps),
		plusScreenProps:   newSmallSet(file.Plus.ScreenProps),
		plusIconOverrides: newSmallSet(file.Plus.IconOverrides),
		plusObjectTiles:   file.Plus.ObjectTiles,
		advWorldProps:     newSmallSet(file.Advanced.WorldProps),
		advScreenProps:    newSmallSet(file.Advanced.ScreenProps),
		acoObjectProps:    newSmallSet(file.ACO.ObjectProps),
		acoScreenProps:    newSmallSet(file.ACO.ScreenProps),
		flagProps:         newSmallSet(file.Flags.Props),
		flagWarpProps:     newSmallSet(file.Flags.WarpProps),
		vanillaDirs:       newSmallSet(file.VanillaDirs),
	}
})
