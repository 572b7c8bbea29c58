package recon

// Config holds the engine-level reconciliation settings.
type Config struct {
	// SideAName is the display name of the authoritative system.
	SideAName string `mapstructure:"side_a_name" default:"Alfa"`
	// SideBName is the display name of the derived/external system.
	SideBName string `mapstructure:"side_b_name" default:"Gamma"`
}

// ReportOptions converts the configured side names into report options.
func (c Config) ReportOptions() ReportOptions {
	return ReportOptions{SideAName: c.SideAName, SideBName: c.SideBName}
}
