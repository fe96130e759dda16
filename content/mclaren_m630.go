package content

var m630 = withGraph(
	func() pageGraph {
		g := mclarenGraph("m630", "McLaren M630 3.0L Twin-Turbo V6 Hybrid").
			figures(2993, 430, 720, "2021/", "McLaren M630", "Artura engine", "120-degree V6", "plug-in hybrid")
		g.engineType = "Twin-turbocharged 120° V6 with axial-flux E-motor"
		g.fuelType = "Petrol (RON 98) / electricity"
		return g
	}(),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M630 (Artura) Engine Review: Specs, Hybrid System & Reliability",
			Description: "McLaren's first V6: a 3.0-litre 120° twin-turbo with an axial-flux E-motor, used in the Artura. Specifications, common problems and compatible models.",
		},
		Hero: Hero{
			Years: "(2021–present)",
			Intro: []string{
				"The M630 is a clean-sheet 2,993 cc V6 with a 120° bank angle and the turbochargers mounted inside the vee. It develops 585 PS on its own and 680 PS combined with the E-motor integrated into the transmission bell housing.",
				"It is the first series-production McLaren engine not derived from the M838T family.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the M630 V6 and its hybrid drive as fitted to the Artura.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M630", "McLaren Artura press kit, 2021"),
				spec("Configuration", "120° V6, hot vee", "McLaren Artura press kit, 2021"),
				spec("Displacement", "2,993 cc", "McLaren Artura press kit, 2021"),
				spec("Bore × stroke", "94.0 mm × 71.9 mm", "McLaren Artura press kit, 2021"),
				spec("Maximum power (engine)", "585 PS (430 kW) @ 7,500 rpm", "McLaren Artura press kit, 2021"),
				spec("Maximum power (combined)", "680 PS (500 kW)", "McLaren Artura press kit, 2021"),
				spec("Maximum torque (combined)", "720 N·m", "McLaren Artura press kit, 2021"),
				spec("E-motor", "Axial flux, 95 PS (70 kW), 225 N·m", "McLaren Artura press kit, 2021"),
				spec("Battery", "7.4 kWh usable, lithium-ion", "McLaren Artura press kit, 2021"),
				spec("Rev limit", "8,500 rpm", "McLaren Artura owner's handbook"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "Living with the hybrid V6",
				Content: "Software has driven most early faults. Keep the car on the latest calibration and let the high-voltage battery charge regularly; long storage without a maintainer causes the most complaints.",
				DataVerificationNotes: map[string]string{
					"2024 update": "From the 2025 model year McLaren quotes 605 PS for the engine and 700 PS combined.",
					"Weight":      "The quoted 160 kg engine weight excludes the E-motor and battery.",
				},
				PrimarySources: []string{
					"McLaren Automotive, Artura press kit (2021)",
					"McLaren Automotive, Artura Spider press release (2024)",
				},
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used in the **Artura** family, McLaren's first series-production plug-in hybrid.",
			Rows: []ModelRow{
				model("McLaren", "Artura", "2021–present", "Coupe", "McLaren Artura parts catalogue"),
				model("McLaren", "Artura Spider", "2024–present", "Spider", "McLaren Artura Spider press release"),
			},
			GuidanceTitle: "Identifying an M630",
			GuidanceText:  "The Artura is the only car to use it. The engine serial number sits at the rear of the block on the left bank.",
			ExtraNotes: []NoteGroup{
				{
					Name: "Hybrid system",
					Fields: map[string][]string{
						"E-motor":      {"Axial flux", "Integrated in the 8-speed transmission"},
						"Battery":      {"7.4 kWh usable", "Up to 31 km electric range (WLTP)"},
						"Charging":     {"Type 2 AC", "Around 2.5 hours to 80 percent"},
						"Calibrations": {"Coupe 680 PS at launch", "700 PS from model year 2025"},
					},
				},
			},
		},
		BannerImage: "/public/images/engines/mclaren-m630.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known M630 issues",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "Mechanically young; most reported faults are software and high-voltage system warnings that dealer updates have addressed.",
				Gradient:    mclarenGradient,
			},
			Issues: []Issue{
				{
					Title:    "Early software and electrical warnings",
					Symptoms: "Dashboard warnings, refusal to start, infotainment resets.",
					Cause:    "Immature calibration of the hybrid and 48 V systems on early cars.",
					Fix:      "Apply the latest software release at a McLaren retailer.",
				},
				{
					Title:    "High-voltage battery deep discharge",
					Symptoms: "Car will not enter ready mode after storage.",
					Cause:    "Battery allowed to discharge below its minimum state of charge.",
					Fix:      "Use the McLaren trickle charger during storage; a deep-discharged pack needs retailer recovery.",
				},
			},
		},
		FAQs: []FAQ{
			{Question: "What engine is in the McLaren Artura?", Answer: "The M630, a 3.0-litre twin-turbo 120° V6 combined with an axial-flux electric motor."},
			{Question: "How much power does the Artura make?", Answer: "680 PS combined at launch, raised to 700 PS from model year 2025."},
			{Question: "Is the M630 related to the V8 engines?", Answer: "No. It is a new design and shares no major components with the M838T or M840T."},
		},
	},
)
