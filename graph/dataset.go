package graph

// Connection is one declared link from a domain to another
type Connection struct {
	Target string `toml:"target"`
	Label  string `toml:"label"`
}

// Domain is the per-node payload supplied by a data provider
type Domain struct {
	ID              string       `toml:"id"`
	Name            string       `toml:"name"`
	Description     string       `toml:"description"`
	Color           string       `toml:"color"`
	Icon            string       `toml:"icon"`
	ComponentCount  int          `toml:"components"`
	ConnectionCount int          `toml:"connection_count"`
	Connections     []Connection `toml:"connections"`

	// Weight is the static complexity weight; zero selects the default
	Weight float64 `toml:"weight"`
	// Foundational multiplies the raw score of core domains; zero selects 1.0
	Foundational float64 `toml:"foundational"`
	// Seed places the node on the initial layout; nil selects a fallback placement
	Seed *Seed `toml:"seed"`
}

// Connectivity returns the effective connection count
// An explicit count wins over the declared connection list length
func (d Domain) Connectivity() int {
	if d.ConnectionCount > 0 {
		return d.ConnectionCount
	}
	return len(d.Connections)
}

// Seed is a polar placement relative to the focal point
// Ring is a fraction of the configured spread
type Seed struct {
	Angle float64 `toml:"angle"`
	Ring  float64 `toml:"ring"`
}

// Group is a named cluster with a center in normalized viewport coordinates
type Group struct {
	Name    string   `toml:"name"`
	X       float64  `toml:"x"`
	Y       float64  `toml:"y"`
	Members []string `toml:"members"`
}

// Dataset is everything a data provider hands to graph construction
// Domain order is draw order
type Dataset struct {
	Name    string   `toml:"name"`
	Domains []Domain `toml:"domains"`
	Groups  []Group  `toml:"groups"`
}
