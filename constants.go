package eto

// Physical constants from Allen et al. (1998).
const (
	// SolarConstant is the solar constant [MJ m-2 min-1].
	SolarConstant = 0.0820

	// StefanBoltzmann is the Stefan-Boltzmann constant
	// [MJ K-4 m-2 day-1].
	StefanBoltzmann = 0.000000004903

	// GrassAlbedo is the canopy reflection coefficient of the
	// hypothetical grass reference crop, the albedo to use with
	// [NetInSolRad] for reference conditions.
	GrassAlbedo = 0.23
)
