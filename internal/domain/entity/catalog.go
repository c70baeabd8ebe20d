package entity

// catalogRow is one built-in curriculum entry before it gets a database id.
type catalogRow struct {
	phase   string
	subject string
	chapter string
}

// defaultCatalog is the fixed 120-day study plan. The order here is the order
// the checklist is displayed in, so rows must not be rearranged.
var defaultCatalog = []catalogRow{
	// Weeks 1-2: mechanics and algebra foundations
	{"Phase 1 (Wk 1-2)", "Physics", "Units & Dimensions, Kinematics, NLM, Friction"},
	{"Phase 1 (Wk 1-2)", "Physics", "Work Energy Power, Circular Motion (Basics)"},
	{"Phase 1 (Wk 1-2)", "Chemistry", "Mole Concept, States of Matter, Thermodynamics"},
	{"Phase 1 (Wk 1-2)", "Chemistry", "Chemical Equilibrium, Ionic Equilibrium"},
	{"Phase 1 (Wk 1-2)", "Maths", "Quadratic Eq, Complex Numbers, Seq & Series"},
	{"Phase 1 (Wk 1-2)", "Maths", "Polynomials, Matrices, Determinants"},

	// Weeks 3-4: organic base, waves and coordinate geometry
	{"Phase 1 (Wk 3-4)", "Physics", "COM, Rotational (Basics), Gravitation, SHM"},
	{"Phase 1 (Wk 3-4)", "Physics", "Waves, Doppler, Fluid Basics"},
	{"Phase 1 (Wk 3-4)", "Chemistry", "GOC, Isomerism, Hydrocarbons"},
	{"Phase 1 (Wk 3-4)", "Chemistry", "Alkyl Halides, Alcohols, Phenols, Ethers"},
	{"Phase 1 (Wk 3-4)", "Maths", "Trigonometry, PnC, Probability Basics"},
	{"Phase 1 (Wk 3-4)", "Maths", "Straight Lines, Circles, Parabola (Formulas only)"},

	// Week 5: high-yield organic and electrostatics
	{"Phase 1 (Wk 5)", "Physics", "Electrostatics (Field/Potential), Capacitance"},
	{"Phase 1 (Wk 5)", "Physics", "Current Electricity (Kirchhoff Basics)"},
	{"Phase 1 (Wk 5)", "Chemistry", "Aldehydes, Ketones, Carboxylic Acids"},
	{"Phase 1 (Wk 5)", "Chemistry", "Amines, Biomolecules, Polymers"},
	{"Phase 1 (Wk 5)", "Maths", "Vectors, 3D Geometry"},

	// Week 6: inorganic block 1 and magnetism
	{"Phase 1 (Wk 6)", "Physics", "Magnetism, Moving Charges, EMI, AC"},
	{"Phase 1 (Wk 6)", "Chemistry", "Periodic Table, Bonding"},
	{"Phase 1 (Wk 6)", "Chemistry", "s-Block, p-Block (Imp NCERT lines)"},
	{"Phase 1 (Wk 6)", "Maths", "Calculus Base: Limits, Derivatives"},

	// Weeks 7-8: inorganic block 2, optics and modern physics
	{"Phase 1 (Wk 7-8)", "Physics", "Ray Optics, Optical Instruments"},
	{"Phase 1 (Wk 7-8)", "Physics", "Modern Physics, Semiconductors"},
	{"Phase 1 (Wk 7-8)", "Chemistry", "Coordination Compounds, d&f Block"},
	{"Phase 1 (Wk 7-8)", "Chemistry", "Hydrogen, Environmental Chem, Full NCERT Rev"},
	{"Phase 1 (Wk 7-8)", "Maths", "Calculus: AOD, Integration, Area Under Curve"},

	// Phase 2: revision
	{"Phase 2 (Days 61-80)", "Chemistry", "Full NCERT Rev + Exemplar + 5 PYQ Papers"},
	{"Phase 2 (Days 61-80)", "Physics", "7 Days Pure PYQs (Mech + Modern + Optics)"},
	{"Phase 2 (Days 61-80)", "Maths", "PYQ Focus (Algebra + Coordinate + Calculus)"},
	{"Phase 2 (Days 61-80)", "Mock Tests", "Mini Mocks (Target 100-120 Marks)"},

	// Phase 3: mock test block
	{"Phase 3 (Days 81-110)", "Mocks", "15 Full Mocks (1 every 2 days)"},
	{"Phase 3 (Days 81-110)", "Analysis", "Error Notebook (Concept vs Silly Mistakes)"},
	{"Phase 3 (Days 81-110)", "Target", "Score Goal: 130 -> 145 -> 160+"},

	// Phase 4: final sharpening
	{"Phase 4 (Days 111-120)", "Revision", "All Formula Rev + NCERT Scan"},
	{"Phase 4 (Days 111-120)", "Mocks", "6 Mini Mocks (Accuracy Focus)"},
}

// DefaultCatalog returns a fresh copy of the built-in curriculum with every
// chapter set to Not Started. Callers may mutate the returned slice freely.
func DefaultCatalog() []*SyllabusItem {
	items := make([]*SyllabusItem, 0, len(defaultCatalog))
	for _, row := range defaultCatalog {
		items = append(items, &SyllabusItem{
			Phase:   row.phase,
			Subject: row.subject,
			Chapter: row.chapter,
			Status:  StatusNotStarted,
		})
	}

	return items
}
