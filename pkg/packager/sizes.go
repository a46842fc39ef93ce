package packager

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrhapile/distpack/pkg/types"
)

// Valid size tier names.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// sizeConfigs is the fixed preset table. It is not user-configurable.
var sizeConfigs = map[string]types.SizeConfig{
	SizeSmall:  {FileCount: 10, FileSizeKB: 100, Description: "Quick packaging (~10 MB)"},
	SizeMedium: {FileCount: 50, FileSizeKB: 500, Description: "Moderate packaging (~50 MB)"},
	SizeLarge:  {FileCount: 100, FileSizeKB: 1000, Description: "Large packaging (~200 MB)"},
}

// ResolveSize maps a size tier name to its preset configuration.
func ResolveSize(name string) (types.SizeConfig, error) {
	cfg, ok := sizeConfigs[name]
	if !ok {
		return types.SizeConfig{}, fmt.Errorf("unknown size %q (valid sizes: %s)", name, strings.Join(SizeNames(), ", "))
	}
	return cfg, nil
}

// SizeNames returns the valid tier names in sorted order.
func SizeNames() []string {
	names := make([]string, 0, len(sizeConfigs))
	for name := range sizeConfigs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
