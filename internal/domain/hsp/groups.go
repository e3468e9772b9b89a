package hsp

// ─────────────────────────────────────────────────────────────────────────────
// Functional group table
// ─────────────────────────────────────────────────────────────────────────────

// GroupContribution holds the Hoftyzer–Van Krevelen coefficients of one group.
// Fd and Fp are molar attraction constants in MPa^0.5·cm³/mol, Eh is a
// hydrogen-bond energy in J/mol, V a molar volume increment in cm³/mol.
type GroupContribution struct {
	Fd float64
	Fp float64
	Eh float64
	V  float64
}

// EnergyContribution holds the Stefanis-style coefficients of one group.  All
// three E values are cohesive energies in J/mol, V is the same molar volume
// increment as in GroupContribution.
type EnergyContribution struct {
	Ed float64
	Ep float64
	Eh float64
	V  float64
}

// Group is one entry of the static functional group catalog.  Higher Priority
// groups claim atoms first during fragmentation; among equal priorities the
// earlier table entry wins, which pins the tie-break to stable table order.
//
// V may be negative only for branch-point carbons (steric correction); every
// other coefficient is non-negative.
type Group struct {
	Name        string
	Pattern     string
	Priority    int
	VanKrevelen GroupContribution
	Stefanis    EnergyContribution
}

// defaultGroups is the built-in catalog, already in descending priority
// order.  Loaded once at process start, never mutated.
var defaultGroups = []Group{
	{
		Name: "carboxylic acid", Pattern: "C(=O)[OH]", Priority: 90,
		VanKrevelen: GroupContribution{Fd: 530, Fp: 420, Eh: 10000, V: 28.5},
		Stefanis:    EnergyContribution{Ed: 7100, Ep: 5200, Eh: 11500, V: 28.5},
	},
	{
		Name: "ester", Pattern: "C(=O)[O]", Priority: 85,
		VanKrevelen: GroupContribution{Fd: 390, Fp: 490, Eh: 7000, V: 18.0},
		Stefanis:    EnergyContribution{Ed: 6300, Ep: 6100, Eh: 7400, V: 18.0},
	},
	{
		Name: "amide", Pattern: "C(=O)N", Priority: 83,
		VanKrevelen: GroupContribution{Fd: 500, Fp: 600, Eh: 12000, V: 24.0},
		Stefanis:    EnergyContribution{Ed: 7500, Ep: 9400, Eh: 13100, V: 24.0},
	},
	{
		Name: "nitrile", Pattern: "C#N", Priority: 80,
		VanKrevelen: GroupContribution{Fd: 430, Fp: 1100, Eh: 2500, V: 24.0},
		Stefanis:    EnergyContribution{Ed: 5900, Ep: 14800, Eh: 2700, V: 24.0},
	},
	{
		Name: "aromatic ring", Pattern: "c1ccccc1", Priority: 75,
		VanKrevelen: GroupContribution{Fd: 1270, Fp: 110, Eh: 0, V: 52.4},
		Stefanis:    EnergyContribution{Ed: 17300, Ep: 650, Eh: 550, V: 52.4},
	},
	{
		Name: "carbonyl", Pattern: "C=O", Priority: 70,
		VanKrevelen: GroupContribution{Fd: 290, Fp: 770, Eh: 2000, V: 10.8},
		Stefanis:    EnergyContribution{Ed: 4200, Ep: 10100, Eh: 2200, V: 10.8},
	},
	{
		Name: "hydroxyl", Pattern: "[OH]", Priority: 65,
		VanKrevelen: GroupContribution{Fd: 210, Fp: 500, Eh: 20000, V: 10.0},
		Stefanis:    EnergyContribution{Ed: 5700, Ep: 4500, Eh: 22000, V: 10.0},
	},
	{
		Name: "primary amine", Pattern: "[NH2]", Priority: 60,
		VanKrevelen: GroupContribution{Fd: 280, Fp: 610, Eh: 8400, V: 19.2},
		Stefanis:    EnergyContribution{Ed: 4100, Ep: 6200, Eh: 9000, V: 19.2},
	},
	{
		Name: "secondary amine", Pattern: "[NH]", Priority: 58,
		VanKrevelen: GroupContribution{Fd: 160, Fp: 210, Eh: 3100, V: 4.5},
		Stefanis:    EnergyContribution{Ed: 2400, Ep: 1300, Eh: 3400, V: 4.5},
	},
	{
		Name: "tertiary amine", Pattern: "[N]", Priority: 56,
		VanKrevelen: GroupContribution{Fd: 20, Fp: 800, Eh: 5000, V: 4.3},
		Stefanis:    EnergyContribution{Ed: 1100, Ep: 7600, Eh: 5400, V: 4.3},
	},
	{
		Name: "ether", Pattern: "[O]", Priority: 55,
		VanKrevelen: GroupContribution{Fd: 100, Fp: 400, Eh: 3000, V: 3.8},
		Stefanis:    EnergyContribution{Ed: 1600, Ep: 3200, Eh: 3300, V: 3.8},
	},
	{
		Name: "alkene", Pattern: "C=C", Priority: 50,
		VanKrevelen: GroupContribution{Fd: 400, Fp: 60, Eh: 1000, V: 27.0},
		Stefanis:    EnergyContribution{Ed: 5500, Ep: 300, Eh: 1100, V: 27.0},
	},
	{
		Name: "fluoro", Pattern: "F", Priority: 45,
		VanKrevelen: GroupContribution{Fd: 220, Fp: 500, Eh: 500, V: 18.0},
		Stefanis:    EnergyContribution{Ed: 2900, Ep: 4600, Eh: 550, V: 18.0},
	},
	{
		Name: "chloro", Pattern: "Cl", Priority: 44,
		VanKrevelen: GroupContribution{Fd: 450, Fp: 550, Eh: 400, V: 24.0},
		Stefanis:    EnergyContribution{Ed: 6000, Ep: 5200, Eh: 450, V: 24.0},
	},
	{
		Name: "bromo", Pattern: "Br", Priority: 43,
		VanKrevelen: GroupContribution{Fd: 550, Fp: 610, Eh: 300, V: 30.0},
		Stefanis:    EnergyContribution{Ed: 7200, Ep: 6100, Eh: 350, V: 30.0},
	},
	{
		Name: "iodo", Pattern: "I", Priority: 42,
		VanKrevelen: GroupContribution{Fd: 700, Fp: 650, Eh: 200, V: 31.5},
		Stefanis:    EnergyContribution{Ed: 9100, Ep: 6500, Eh: 250, V: 31.5},
	},
	{
		Name: "methyl", Pattern: "[CH3]", Priority: 20,
		VanKrevelen: GroupContribution{Fd: 420, Fp: 0, Eh: 0, V: 33.5},
		Stefanis:    EnergyContribution{Ed: 4710, Ep: 0, Eh: 0, V: 33.5},
	},
	{
		Name: "methylene", Pattern: "[CH2]", Priority: 15,
		VanKrevelen: GroupContribution{Fd: 270, Fp: 0, Eh: 0, V: 16.1},
		Stefanis:    EnergyContribution{Ed: 4190, Ep: 0, Eh: 0, V: 16.1},
	},
	{
		Name: "methine", Pattern: "[CH]", Priority: 10,
		VanKrevelen: GroupContribution{Fd: 80, Fp: 0, Eh: 0, V: -1.0},
		Stefanis:    EnergyContribution{Ed: 3430, Ep: 0, Eh: 0, V: -1.0},
	},
	{
		Name: "quaternary carbon", Pattern: "[C]", Priority: 5,
		VanKrevelen: GroupContribution{Fd: 0, Fp: 0, Eh: 0, V: -14.8},
		Stefanis:    EnergyContribution{Ed: 1470, Ep: 0, Eh: 0, V: -14.8},
	},
}

// Groups returns the built-in functional group catalog in evaluation order.
// The returned slice is a copy; the catalog itself is immutable.
func Groups() []Group {
	out := make([]Group, len(defaultGroups))
	copy(out, defaultGroups)
	return out
}
