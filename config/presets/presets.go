// Package presets holds named configurations that replace the defaults before the
// config file and flags are applied.
package presets

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/ballotpaper/go-ballotpaper/config"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("can't register config with name %s more than once", name))
	}
	conf.Preset = name
	presets[name] = conf
}

// Options returns the names of all presets.
func Options() []string {
	rst := maps.Keys(presets)
	slices.Sort(rst)
	return rst
}

// Get returns the preset with the given name.
func Get(name string) (config.Config, error) {
	conf, exist := presets[name]
	if !exist {
		return conf, fmt.Errorf("preset %s is not registered. select one from the options %+s", name, Options())
	}
	return conf, nil
}
