package content

var m838t = withGraph(
	mclarenGraph("m838t", "McLaren M838T 3.8L Twin-Turbo V8").
		figures(3799, 441, 600, "2011/2017", "McLaren M838T", "MP4-12C engine", "650S engine", "675LT engine", "3.8 twin-turbo V8"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M838T Engine Review: Specs, Reliability & Compatible Models",
			Description: "The McLaren M838T 3.8-litre twin-turbo V8 powered the MP4-12C, 650S and 675LT. Verified specifications, common faults and buyer guidance.",
		},
		Hero: Hero{
			Years: "(2011–2017)",
			Intro: []string{
				"The M838T is the 3,799 cc twin-turbocharged V8 that launched McLaren Automotive as a road-car maker in 2011. Developed with Ricardo and assembled in Shoreham-by-Sea, it sits low in the carbon MonoCell chassis on a dry-sump lubrication system.",
				"Output grew from 600 PS in the MP4-12C to 675 PS in the 675LT without a change of displacement, largely through turbocharger, camshaft and calibration revisions. The flat-plane crankshaft gives the engine its sharp response and distinctive exhaust note.",
				"This page collects the verified specification, the faults owners and independent specialists report most often, and the exact models and years that used each state of tune.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Core dimensions and output figures for the M838T across the 12C, 650S and 675LT applications.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M838T", "McLaren Automotive press kit, 2011"),
				spec("Configuration", "90° V8, flat-plane crankshaft", "McLaren Automotive press kit, 2011"),
				spec("Displacement", "3,799 cc", "McLaren Automotive press kit, 2011"),
				spec("Bore × stroke", "93.0 mm × 69.9 mm", "Ricardo technical release, 2011"),
				spec("Compression ratio", "8.7:1", "McLaren Automotive press kit, 2011"),
				spec("Valvetrain", "DOHC, 4 valves per cylinder, variable cam timing", "McLaren 12C workshop information"),
				spec("Induction", "Twin Mitsubishi Heavy Industries turbochargers", "McLaren Automotive press kit, 2011"),
				spec("Maximum power", "600 PS (441 kW) @ 7,000 rpm (12C); 650 PS (478 kW) @ 7,250 rpm (650S); 675 PS (496 kW) @ 7,100 rpm (675LT)", "McLaren model-year press releases"),
				spec("Maximum torque", "600 N·m (12C); 678 N·m (650S); 700 N·m (675LT)", "McLaren model-year press releases"),
				spec("Rev limit", "8,500 rpm", "McLaren 12C owner's handbook"),
				spec("Lubrication", "Dry sump", "McLaren Automotive press kit, 2011"),
				spec("Dry weight", "199 kg", "Ricardo technical release, 2011"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "What the numbers mean for owners",
				Content: "The short stroke and 8,500 rpm limit make the M838T happiest at high revs, but the twin turbos deliver most of the torque from 3,000 rpm, so the car is tractable in traffic. The dry-sump system means the oil level must be checked hot and idling, following the handbook procedure; a cold dipstick-style reading will look low and leads to overfilling.",
				DataVerificationNotes: map[string]string{
					"Power figures":  "The 12C was launched at 600 PS; a 2012 software update raised early cars to 625 PS. Both figures appear in period literature.",
					"Torque figures": "Peak torque is available across a broad plateau; the figures quoted are the manufacturer's peak values.",
					"Weight":         "The 199 kg figure excludes fluids and the exhaust system.",
				},
				PrimarySources: []string{
					"McLaren Automotive, MP4-12C press kit (2011)",
					"McLaren Automotive, 650S press release (2014)",
					"McLaren Automotive, 675LT press release (2015)",
					"Ricardo plc, M838T engine programme release (2011)",
				},
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "The M838T was fitted to every **Super Series** car from the MP4-12C to the 675LT. The Sports Series cars use the related [M838TE](/engines/mclaren/m838te/).",
			Rows: []ModelRow{
				model("McLaren", "MP4-12C / 12C", "2011–2014", "Coupe", "McLaren 12C parts catalogue"),
				model("McLaren", "12C Spider", "2012–2014", "Spider", "McLaren 12C parts catalogue"),
				model("McLaren", "650S", "2014–2017", "Coupe, Spider", "McLaren 650S parts catalogue"),
				model("McLaren", "625C", "2014–2016", "Coupe, Spider (Asia-Pacific)", "McLaren 625C press release"),
				model("McLaren", "675LT", "2015–2017", "Coupe, Spider", "McLaren 675LT parts catalogue"),
			},
			GuidanceTitle: "How to confirm which M838T you have",
			GuidanceText:  "The engine number is stamped on the crankcase at the rear of the left-hand cylinder bank. The tenth VIN character gives the model year; 675LT engines carry a distinct calibration code readable with the McLaren diagnostic tool.",
			ExtraNotes: []NoteGroup{
				{
					Name: "Calibration updates",
					Fields: map[string][]string{
						"12C 2012 update": {"Power raised from 600 PS to 625 PS", "Applied free of charge by dealers to earlier cars"},
						"675LT":           {"Revised turbochargers", "Lighter connecting rods and new camshafts"},
					},
				},
			},
		},
		BannerImage: "/public/images/engines/mclaren-m838t.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known M838T issues and how they are fixed",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "The M838T block and crank are robust. Most faults are in ancillaries: coolant plumbing, sensors, ignition coils and turbo wastegate actuators.",
				Gradient:    mclarenGradient,
			},
			Issues: []Issue{
				{
					Title:    "Coolant leaks from the header tank and crossover pipes",
					Symptoms: "Sweet smell after driving, low coolant warning, white residue on the engine cover.",
					Cause:    "Plastic coolant header tank and pipe joints fatigue under heat cycling in the enclosed engine bay.",
					Fix:      "Replace the header tank with the revised part and renew the crossover pipe O-rings; pressure-test the system afterwards.",
				},
				{
					Title:    "Ignition coil pack failure",
					Symptoms: "Misfire under load, flashing engine warning light, rough idle.",
					Cause:    "Coil packs sit close to the exhaust manifolds and break down with heat.",
					Fix:      "Replace the failed coil; many specialists replace all eight together with fresh spark plugs.",
				},
				{
					Title:    "Wastegate actuator rattle",
					Symptoms: "Metallic rattle from the rear of the car at idle or on lift-off, occasional boost fault.",
					Cause:    "Wear in the wastegate linkage of the turbochargers.",
					Fix:      "Adjust or replace the actuator; early turbochargers were superseded by revised units.",
				},
				{
					Title:    "Camshaft position sensor faults",
					Symptoms: "Engine warning light, hesitation on start-up, stored cam timing codes.",
					Cause:    "Sensor connector corrosion and heat damage to the wiring.",
					Fix:      "Replace the sensor and repair the connector; clear adaptations with the diagnostic tool.",
				},
			},
		},
		FAQs: []FAQ{
			{Question: "Is the McLaren M838T reliable?", Answer: "Yes. The core engine is strong; most reported faults are coolant leaks, ignition coils and sensors rather than internal failures."},
			{Question: "Which cars use the M838T engine?", Answer: "The MP4-12C and 12C Spider, 650S, 625C and 675LT between 2011 and 2017."},
			{Question: "How much power does the M838T make?", Answer: "Between 600 PS in the original MP4-12C and 675 PS in the 675LT."},
			{Question: "Who built the M838T?", Answer: "It was developed with Ricardo and assembled at Ricardo's facility in Shoreham-by-Sea, UK."},
			{Question: "How often does the M838T need servicing?", Answer: "McLaren specifies an annual service or every 10,000 miles, whichever comes first, with spark plugs at four years."},
		},
	},
)

var m838te = withGraph(
	mclarenGraph("m838te", "McLaren M838TE 3.8L Twin-Turbo V8").
		figures(3799, 419, 600, "2015/2021", "McLaren M838TE", "570S engine", "540C engine", "600LT engine", "Sports Series V8"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M838TE Engine Review: Specs, Reliability & Compatible Models",
			Description: "The M838TE is the Sports Series version of McLaren's 3.8 twin-turbo V8, used in the 540C, 570S, 570GT and 600LT.",
		},
		Hero: Hero{
			Years: "(2015–2021)",
			Intro: []string{
				"The M838TE is a reworked M838T for the Sports Series range. McLaren quotes around 30 percent new parts, including revised pistons, a new cylinder head design and an electronic wastegate setup tuned for low-rpm response.",
				"It produced 540 PS in the 540C, 570 PS in the 570S and 570GT, and 600 PS in the 600LT, making it the most widely produced McLaren engine of its era.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the M838TE across the Sports Series range.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M838TE", "McLaren 570S press kit, 2015"),
				spec("Configuration", "90° V8, flat-plane crankshaft", "McLaren 570S press kit, 2015"),
				spec("Displacement", "3,799 cc", "McLaren 570S press kit, 2015"),
				spec("Bore × stroke", "93.0 mm × 69.9 mm", "McLaren 570S press kit, 2015"),
				spec("Induction", "Twin turbochargers with electronic wastegates", "McLaren 570S press kit, 2015"),
				spec("Maximum power", "540 PS (397 kW) (540C); 570 PS (419 kW) (570S/570GT); 600 PS (441 kW) (600LT)", "McLaren model-year press releases"),
				spec("Maximum torque", "540 N·m (540C); 600 N·m (570S/570GT); 620 N·m (600LT)", "McLaren model-year press releases"),
				spec("Rev limit", "8,500 rpm", "McLaren 570S owner's handbook"),
				spec("Lubrication", "Dry sump", "McLaren 570S press kit, 2015"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "Living with the M838TE",
				Content: "Sports Series cars are used more often than the Super Series, so service history matters more than mileage. The revised turbo control gives stronger mid-range response; the 600LT's top-exit exhaust heats the rear deck and nearby wiring.",
				DataVerificationNotes: map[string]string{
					"New parts share": "The 30 percent figure is McLaren's own statement at the 570S launch.",
					"600LT torque":    "Some markets list 620 N·m and others 600 N·m; the higher figure is from the global press kit.",
				},
				PrimarySources: []string{
					"McLaren Automotive, 570S press kit (2015)",
					"McLaren Automotive, 540C press release (2015)",
					"McLaren Automotive, 600LT press release (2018)",
				},
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used across the **Sports Series**. Super Series cars of the same period use the [M838T](/engines/mclaren/m838t/).",
			Rows: []ModelRow{
				model("McLaren", "540C", "2015–2021", "Coupe", "McLaren Sports Series parts catalogue"),
				model("McLaren", "570S", "2015–2021", "Coupe, Spider", "McLaren Sports Series parts catalogue"),
				model("McLaren", "570GT", "2016–2021", "Coupe", "McLaren Sports Series parts catalogue"),
				model("McLaren", "600LT", "2018–2020", "Coupe, Spider", "McLaren 600LT parts catalogue"),
			},
			GuidanceTitle: "Identifying an M838TE",
			GuidanceText:  "The engine code is printed on the plenum label. 600LT engines additionally carry a unique calibration code and the top-exit exhaust.",
		},
		BannerImage: "/public/images/engines/mclaren-m838te.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known M838TE issues",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "A mature design with few internal failures. Check coolant pipe condition and for signs of heat damage near the exhaust.",
				Gradient:    mclarenGradient,
			},
			Issues: []Issue{
				{
					Title:    "Coolant pipe leaks",
					Symptoms: "Low coolant warnings and dampness around the front of the engine.",
					Cause:    "Shared coolant pipe design with the M838T; joints weep with age.",
					Fix:      "Replace the affected pipes and seals with the latest superseded parts.",
				},
				{
					Title:    "Exhaust heat damage on 600LT",
					Symptoms: "Discoloured rear deck, brittle wiring loom near the exhaust exits.",
					Cause:    "Top-exit exhaust routes hot gas close to bodywork and wiring.",
					Fix:      "Inspect and repair loom sections; fit the updated heat shields.",
				},
				{
					Title:    "Oil leaks at the cam cover",
					Symptoms: "Burning-oil smell and residue on the cam cover edges.",
					Cause:    "Cam cover gasket hardening.",
					Fix:      "Renew the cam cover gaskets during the next major service.",
				},
			},
		},
		FAQs: []FAQ{
			{Question: "What is the difference between the M838T and M838TE?", Answer: "The M838TE has revised pistons, cylinder heads and turbo control for the Sports Series; roughly 30 percent of its parts are new."},
			{Question: "Which McLaren models use the M838TE?", Answer: "The 540C, 570S, 570GT and 600LT."},
			{Question: "Is the M838TE reliable?", Answer: "Generally yes. Coolant pipes and gaskets are the main wear items."},
		},
	},
)

var m838tq = withGraph(
	func() pageGraph {
		g := mclarenGraph("m838tq", "McLaren M838TQ 3.8L Twin-Turbo V8 Hybrid").
			figures(3799, 542, 720, "2013/2015", "McLaren M838TQ", "McLaren P1 engine", "hybrid hypercar V8")
		g.engineType = "Twin-turbocharged V8 with integrated electric motor"
		g.fuelType = "Petrol (RON 98) / electricity"
		return g
	}(),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M838TQ (P1) Engine Review: Specs, Hybrid System & Reliability",
			Description: "The M838TQ combined a 737 PS twin-turbo V8 with an electric motor to give the McLaren P1 916 PS. Specifications and known issues.",
		},
		Hero: Hero{
			Years: "(2013–2015)",
			Intro: []string{
				"The M838TQ is the hybrid powertrain of the McLaren P1. Its V8 shares its architecture with the M838T but runs larger turbochargers and higher boost to make 737 PS on its own.",
				"An electric motor mounted to the engine adds 179 PS, for a combined 916 PS and 900 N·m. Only 375 road cars were built.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Combustion engine and hybrid system specification of the McLaren P1.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M838TQ", "McLaren P1 press kit, 2013"),
				spec("Displacement", "3,799 cc", "McLaren P1 press kit, 2013"),
				spec("Maximum power (engine)", "737 PS (542 kW) @ 7,500 rpm", "McLaren P1 press kit, 2013"),
				spec("Maximum torque (engine)", "720 N·m @ 4,000 rpm", "McLaren P1 press kit, 2013"),
				spec("Electric motor", "179 PS (132 kW), 260 N·m", "McLaren P1 press kit, 2013"),
				spec("Combined output", "916 PS (674 kW), 900 N·m", "McLaren P1 press kit, 2013"),
				spec("Battery", "4.7 kWh lithium-ion, 96 kg", "McLaren P1 press kit, 2013"),
				spec("Electric-only range", "10 km (NEDC)", "McLaren P1 press kit, 2013"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "Ownership considerations",
				Content: "The high-voltage battery needs regular charging even when the car is stored. Battery health checks and replacement are dealer or specialist work, and batteries carry a significant cost.",
				DataVerificationNotes: map[string]string{
					"Combined figures": "Combined power and torque are not the arithmetic sum of engine and motor peaks because they occur at different engine speeds.",
				},
				PrimarySources: []string{
					"McLaren Automotive, P1 press kit (2013)",
					"McLaren Automotive, P1 GTR press release (2015)",
				},
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used only in the **P1** road car and the track-only **P1 GTR**.",
			Rows: []ModelRow{
				model("McLaren", "P1", "2013–2015", "Coupe (375 built)", "McLaren P1 press kit"),
				model("McLaren", "P1 GTR", "2015", "Track-only coupe", "McLaren P1 GTR press release"),
			},
			GuidanceTitle: "Confirming a P1 powertrain",
			GuidanceText:  "Every P1 is individually documented; the build book lists the engine and battery serial numbers.",
		},
		BannerImage: "/public/images/engines/mclaren-m838tq.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known M838TQ issues",
			InfoBlock: InfoBlock{
				Title:       "Hybrid system care",
				Description: "The combustion engine is durable; the high-voltage battery and its management are the main ownership risk.",
				Gradient:    mclarenGradient,
			},
			Issues: []Issue{
				{
					Title:    "High-voltage battery degradation",
					Symptoms: "Reduced electric-only range, hybrid system warnings.",
					Cause:    "Battery cells ageing or deep discharge during storage.",
					Fix:      "Maintain charge with the approved charger; battery replacement through McLaren.",
				},
				{
					Title:    "Fuel tank and fuel line degradation",
					Symptoms: "Fuel smell, warning lights.",
					Cause:    "Age-related deterioration of fuel tank components.",
					Fix:      "Replace the fuel tank assembly under the applicable service campaign.",
				},
			},
		},
		FAQs: []FAQ{
			{Question: "How powerful is the McLaren P1 powertrain?", Answer: "The M838TQ engine makes 737 PS and the electric motor 179 PS, for a combined 916 PS."},
			{Question: "Can the P1 drive on electric power alone?", Answer: "Yes, for about 10 km under the NEDC cycle."},
			{Question: "How many P1s were built?", Answer: "375 road cars, plus the track-only P1 GTR."},
		},
	},
)
