package cosmo

const (
	// SpeedOfLight is c in km/s.
	SpeedOfLight = 299792.458

	// RhoCrit0 is the critical density of the universe at z = 0 in
	// h^2 Msun / Mpc^3.
	RhoCrit0 = 2.775e11

	// DefaultTCMB0 is the present-day CMB temperature in K.
	DefaultTCMB0 = 2.725
)
