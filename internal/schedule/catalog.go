package schedule

// Catalog maps offered grooming services to their duration in minutes.
// It is process-wide immutable configuration.
type Catalog map[string]int

// DefaultCatalog is the salon's service list.
func DefaultCatalog() Catalog {
	return Catalog{
		"Kąpiel i suszenie": 60,
		"Strzyżenie":        60,
		"Trymowanie":        45,
		"Obcinanie pazurów": 15,
		"Czyszczenie uszu":  15,
	}
}

// Knows reports whether the catalog offers the named service.
func (c Catalog) Knows(name string) bool {
	_, ok := c[name]
	return ok
}

// TotalDuration sums the catalog durations of the given services.
// Unknown names contribute nothing, so an all-unknown set totals zero.
func (c Catalog) TotalDuration(services []string) int {
	total := 0
	for _, name := range services {
		total += c[name]
	}
	return total
}
