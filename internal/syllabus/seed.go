package syllabus

// Seed data: the built-in JEE syllabus tree. The explorer shows it at
// startup and keeps it when the backend's /api/syllabus fetch fails;
// topic ID lookups always resolve against it. Kept in display order.

func init() {
	t = buildTree(seedSubjects())
	if err := Validate(t.subjects); err != nil {
		panic("syllabus seed invalid: " + err.Error())
	}
}

func seedSubjects() []Subject {
	return []Subject{
		{
			ID:   "physics",
			Name: "Physics",
			Chapters: []Chapter{
				{
					ID: "units-measurements", Name: "Units And Measurements", Class: Class11,
					Topics: []Topic{{
						ID: "units-basics", Name: "Measurement and Units",
						Subtopics: []string{
							"SI Units and Dimensional Analysis",
							"Errors in Measurement",
							"Significant Figures",
						},
					}},
				},
				{
					ID: "laws-of-motion", Name: "Laws Of Motion", Class: Class11,
					Topics: []Topic{{
						ID: "laws-of-motion-basics", Name: "Newton's Laws and Forces",
						Subtopics: []string{
							"Inertia and Newton's Laws",
							"Force and Types of Forces",
							"Friction (Static, Kinetic, Rolling)",
							"Circular Motion",
							"Dynamics of Connected Bodies (Pulley, String)",
						},
					}},
				},
				{
					ID: "work-energy-power", Name: "Work Energy Power", Class: Class11,
					Topics: []Topic{{
						ID: "energy-basics", Name: "Energy and Power",
						Subtopics: []string{
							"Work Done by Constant and Variable Forces",
							"Kinetic and Potential Energy",
							"Conservation of Energy",
							"Collisions (Elastic, Inelastic)",
							"Power",
						},
					}},
				},
				{
					ID: "gravitation", Name: "Gravitation", Class: Class11,
					Topics: []Topic{{
						ID: "gravitation-basics", Name: "Newton's Law of Gravitation",
						Subtopics: []string{
							"Newton's Law of Gravitation",
							"Gravitational Field and Potential",
							"Acceleration due to Gravity",
							"Escape Velocity and Orbital Velocity",
							"Motion of Satellites",
							"Kepler's Laws",
						},
					}},
				},
				{
					ID: "oscillations", Name: "Oscillations", Class: Class11,
					Topics: []Topic{{
						ID: "oscillations-basics", Name: "Simple Harmonic Motion",
						Subtopics: []string{
							"SHM Equations and Energy",
							"Simple Pendulum",
							"Damped and Forced Oscillations",
							"Resonance",
						},
					}},
				},
				{
					ID: "electric-charges-fields", Name: "Electric Charges And Fields", Class: Class12,
					Topics: []Topic{{
						ID: "electric-fields-basics", Name: "Electrostatics",
						Subtopics: []string{
							"Coulomb's Law",
							"Electric Field and Field Lines",
							"Gauss's Law and Applications",
							"Electric Dipole",
						},
					}},
				},
				{
					ID: "current-electricity", Name: "Current Electricity", Class: Class12,
					Topics: []Topic{{
						ID: "current-basics", Name: "Electric Current",
						Subtopics: []string{
							"Ohm's Law and Resistance",
							"Kirchhoff's Laws",
							"Wheatstone Bridge and Potentiometer",
							"Cells and Internal Resistance",
						},
					}},
				},
				{
					ID: "ray-optics", Name: "Ray Optics", Class: Class12,
					Topics: []Topic{{
						ID: "ray-optics-basics", Name: "Geometric Optics",
						Subtopics: []string{
							"Reflection and Refraction",
							"Lenses and Mirrors",
							"Total Internal Reflection",
							"Optical Instruments",
						},
					}},
				},
			},
		},
		{
			ID:   "chemistry",
			Name: "Chemistry",
			Chapters: []Chapter{
				{
					ID: "basic-concepts-chemistry", Name: "Some Basic Concepts Of Chemistry", Class: Class11,
					Topics: []Topic{{
						ID: "basic-concepts", Name: "Fundamental Concepts",
						Subtopics: []string{
							"Mole Concept and Molar Mass",
							"Stoichiometry",
							"Empirical and Molecular Formulae",
							"Concentration Terms",
						},
					}},
				},
				{
					ID: "structure-atom", Name: "Structure Of Atom", Class: Class11,
					Topics: []Topic{{
						ID: "atomic-structure", Name: "Atomic Structure",
						Subtopics: []string{
							"Bohr Model",
							"Quantum Numbers and Orbitals",
							"Electronic Configuration",
							"Photoelectric Effect",
						},
					}},
				},
				{
					ID: "chemical-bonding", Name: "Chemical Bonding And Molecular Structure", Class: Class11,
					Topics: []Topic{{
						ID: "bonding-basics", Name: "Chemical Bonding",
						Subtopics: []string{
							"Ionic and Covalent Bonds",
							"VSEPR Theory",
							"Hybridisation",
							"Molecular Orbital Theory",
							"Hydrogen Bonding",
						},
					}},
				},
				{
					ID: "equilibrium", Name: "Equilibrium", Class: Class11,
					Topics: []Topic{{
						ID: "equilibrium-basics", Name: "Chemical Equilibrium",
						Subtopics: []string{
							"Law of Mass Action",
							"Le Chatelier's Principle",
							"Ionic Equilibrium and pH",
							"Buffer Solutions",
							"Solubility Product",
						},
					}},
				},
				{
					ID: "aldehydes-ketones-carboxylic", Name: "Aldehydes, Ketones And Carboxylic Acid", Class: Class12,
					Topics: []Topic{{
						ID: "carbonyl-basics", Name: "Carbonyl Compounds",
						Subtopics: []string{
							"Nomenclature and Structure",
							"Nucleophilic Addition Reactions",
							"Aldol and Cannizzaro Reactions",
							"Acidity of Carboxylic Acids",
						},
					}},
				},
			},
		},
		{
			ID:   "mathematics",
			Name: "Mathematics",
			Chapters: []Chapter{
				{
					ID: "complex-numbers-quadratic", Name: "Complex Numbers And Quadratic Equations", Class: Class11,
					Topics: []Topic{{
						ID: "complex-quadratic-basics", Name: "Complex Numbers and Quadratics",
						Subtopics: []string{
							"Algebra of Complex Numbers",
							"Argand Plane and Polar Form",
							"Quadratic Equations and Nature of Roots",
							"Relations between Roots and Coefficients",
						},
					}},
				},
				{
					ID: "permutations-combinations", Name: "Permutations And Combinations", Class: Class11,
					Topics: []Topic{{
						ID: "permutations-basics", Name: "Counting Principles",
						Subtopics: []string{
							"Fundamental Principle of Counting",
							"Permutations",
							"Combinations",
							"Circular Arrangements",
						},
					}},
				},
				{
					ID: "limits-derivatives", Name: "Limits And Derivatives", Class: Class11,
					Topics: []Topic{{
						ID: "limits-derivatives-basics", Name: "Calculus Basics",
						Subtopics: []string{
							"Limits of Functions",
							"Derivatives from First Principles",
							"Rules of Differentiation",
							"Limits of Trigonometric Functions",
						},
					}},
				},
				{
					ID: "probability", Name: "Probability", Class: Class12,
					Topics: []Topic{{
						ID: "probability-basics", Name: "Probability Theory",
						Subtopics: []string{
							"Conditional Probability",
							"Bayes' Theorem",
							"Random Variables and Distributions",
							"Bernoulli Trials and Binomial Distribution",
						},
					}},
				},
				{
					ID: "conic-sections", Name: "Conic Sections", Class: Class11,
					Topics: []Topic{{
						ID: "conic-basics", Name: "Conic Sections",
						Subtopics: []string{
							"Circles",
							"Parabola",
							"Ellipse",
							"Hyperbola",
						},
					}},
				},
			},
		},
	}
}
