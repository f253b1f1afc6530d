package sizeclass

// Config names an ordered list of ranges.
type Config struct {
	Name   string  `json:"name"`
	Ranges []Range `json:"ranges"`
}

// Predefined configurations.
var (
	// ConfigReference is the allocator's canonical range list: dense 8-byte
	// steps for small objects, progressively coarser steps up to 240KB.
	// 63 + 8 + 14 + 8 + 8 + 15 = 116 classes.
	//
	// The last two ranges both start at 16384. Build keeps the overlap, so
	// class 101 repeats the size of class 93 and is never returned by a
	// lookup. Tests pin this layout.
	ConfigReference = Config{
		Name: "reference",
		Ranges: []Range{
			{Start: 8, End: 512, Step: 8},
			{Start: 512, End: 1024, Step: 64},
			{Start: 1024, End: 8192, Step: 512},
			{Start: 8192, End: 16384, Step: 1024},
			{Start: 16384, End: 32768, Step: 2048},
			{Start: 16384, End: 262144, Step: 16384},
		},
	}

	// ConfigNonOverlapping is ConfigReference with the last range starting
	// where the previous one ends. 115 strictly increasing classes.
	ConfigNonOverlapping = Config{
		Name: "nonoverlapping",
		Ranges: []Range{
			{Start: 8, End: 512, Step: 8},
			{Start: 512, End: 1024, Step: 64},
			{Start: 1024, End: 8192, Step: 512},
			{Start: 8192, End: 16384, Step: 1024},
			{Start: 16384, End: 32768, Step: 2048},
			{Start: 32768, End: 262144, Step: 16384},
		},
	}

	// DefaultConfig is the configuration zsizeclasses.go is generated from.
	DefaultConfig = ConfigReference
)

// Configs lists the predefined configurations.
var Configs = []Config{ConfigReference, ConfigNonOverlapping}

// ConfigByName returns the predefined configuration called name.
func ConfigByName(name string) (Config, bool) {
	for _, c := range Configs {
		if c.Name == name {
			return c, true
		}
	}
	return Config{}, false
}
