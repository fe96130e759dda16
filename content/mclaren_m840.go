package content

// The four M840T pages share the marketing identifier "M840T" and most of
// their text. They are kept as separate pages, one per state of tune.

var m840tSources = []string{
	"McLaren Automotive, 720S press kit (2017)",
	"McLaren Automotive, 765LT press release (2020)",
	"McLaren Automotive, Senna press kit (2018)",
	"McLaren Automotive, GT press kit (2019)",
}

var m840tIssues = []Issue{
	{
		Title:    "Coolant leaks from quick-release pipe connectors",
		Symptoms: "Coolant level warning, puddles under the rear of the car after parking.",
		Cause:    "Plastic quick-release connectors on the coolant circuit crack or lose their seal.",
		Fix:      "Fit the revised metal-bodied connectors and pressure-test the system.",
	},
	{
		Title:    "Fuel pump and fuel level sender faults",
		Symptoms: "Long crank times, fluctuating fuel gauge, limp mode.",
		Cause:    "Fuel pump control module and sender failures on early cars.",
		Fix:      "Replace the pump module; check for outstanding recalls for the VIN.",
	},
	{
		Title:    "Ignition coil and spark plug wear",
		Symptoms: "Misfire under boost, engine warning light.",
		Cause:    "High cylinder pressures accelerate plug wear and load the coils.",
		Fix:      "Replace plugs at the scheduled interval and any failed coils.",
	},
}

var m840t = withGraph(
	mclarenGraph("m840t", "McLaren M840T 4.0L Twin-Turbo V8").
		figures(3994, 530, 770, "2017/2023", "McLaren M840T", "720S engine", "4.0 twin-turbo V8"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M840T Engine Review: Specs, Reliability & Compatible Models",
			Description: "The McLaren M840T 4.0-litre twin-turbo V8 succeeded the M838T in the 720S. Specifications, common problems and compatible models.",
		},
		Hero: Hero{
			Years: "(2017–2023)",
			Intro: []string{
				"The M840T replaced the M838T in the second-generation Super Series, debuting in the 720S. McLaren reports 41 percent new parts, including a longer stroke for 3,994 cc, lighter pistons and connecting rods, and twin-scroll turbochargers.",
				"In the 720S it develops 720 PS and 770 N·m, a step of 70 PS over the 650S it replaced.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the M840T as fitted to the 720S and 720S Spider.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M840T", "McLaren 720S press kit, 2017"),
				spec("Configuration", "90° V8, flat-plane crankshaft", "McLaren 720S press kit, 2017"),
				spec("Displacement", "3,994 cc", "McLaren 720S press kit, 2017"),
				spec("Bore × stroke", "93.0 mm × 73.5 mm", "McLaren 720S press kit, 2017"),
				spec("Compression ratio", "8.7:1", "McLaren 720S press kit, 2017"),
				spec("Induction", "Twin twin-scroll turbochargers, electronic wastegates", "McLaren 720S press kit, 2017"),
				spec("Maximum power", "720 PS (530 kW) @ 7,500 rpm", "McLaren 720S press kit, 2017"),
				spec("Maximum torque", "770 N·m @ 5,500 rpm", "McLaren 720S press kit, 2017"),
				spec("Rev limit", "8,500 rpm", "McLaren 720S owner's handbook"),
				spec("Lubrication", "Dry sump", "McLaren 720S press kit, 2017"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "What changed from the M838T",
				Content: "The longer stroke and twin-scroll turbos give noticeably more mid-range torque. Service intervals are unchanged, but coolant connectors and fuel system parts have been the subject of several updates.",
				DataVerificationNotes: map[string]string{
					"Parts share": "The 41 percent new-parts figure is McLaren's statement at the 720S launch.",
				},
				PrimarySources: m840tSources,
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Fitted to the 720S family. Later tunes are covered on the [M840T-S](/engines/mclaren/m840t-s/) and [M840T-R](/engines/mclaren/m840t-r/) pages.",
			Rows: []ModelRow{
				model("McLaren", "720S", "2017–2023", "Coupe", "McLaren 720S parts catalogue"),
				model("McLaren", "720S Spider", "2019–2023", "Spider", "McLaren 720S parts catalogue"),
			},
			GuidanceTitle: "Identifying an M840T",
			GuidanceText:  "The engine code is on the plenum label; the build record lists the exact calibration for the car.",
		},
		BannerImage: "/public/images/engines/mclaren-m840t.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known M840T issues",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "Internally strong; coolant connectors and the fuel system account for most workshop visits.",
				Gradient:    mclarenGradient,
			},
			Issues: m840tIssues,
		},
		FAQs: []FAQ{
			{Question: "What replaced the M838T?", Answer: "The 4.0-litre M840T, introduced in the 720S in 2017."},
			{Question: "How powerful is the M840T in the 720S?", Answer: "720 PS and 770 N·m."},
			{Question: "Is the M840T reliable?", Answer: "The core engine is robust; coolant connectors and fuel pump modules are the common faults."},
		},
	},
)

var m840te = withGraph(
	mclarenGraph("m840t-e", "McLaren M840TE 4.0L Twin-Turbo V8 (GT)").
		figures(3994, 456, 630, "2019/2024", "McLaren M840TE", "McLaren GT engine", "GTS engine"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M840TE (GT) Engine Review: Specs, Reliability & Compatible Models",
			Description: "The M840TE is the grand-touring tune of McLaren's 4.0 V8 used in the GT and GTS. Specifications and common issues.",
		},
		Hero: Hero{
			Years: "(2019–2024)",
			Intro: []string{
				"The McLaren GT uses a version of the M840T with smaller turbochargers, tuned for low-speed response and refinement. It develops 620 PS in the GT and 635 PS in the GTS.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the grand-touring M840T as fitted to the GT and GTS.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M840T", "McLaren GT press kit, 2019"),
				spec("Displacement", "3,994 cc", "McLaren GT press kit, 2019"),
				spec("Induction", "Twin turbochargers, smaller turbine housings", "McLaren GT press kit, 2019"),
				spec("Maximum power", "620 PS (456 kW) (GT); 635 PS (467 kW) (GTS)", "McLaren GT and GTS press releases"),
				spec("Maximum torque", "630 N·m", "McLaren GT press kit, 2019"),
				spec("Rev limit", "8,500 rpm", "McLaren GT owner's handbook"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "A softer state of tune",
				Content: "Lower boost and smaller turbos reduce thermal load, and the GT is typically driven gently, but it shares the coolant connector and fuel pump concerns of the 720S engine.",
				DataVerificationNotes: map[string]string{
					"Engine code": "McLaren literature identifies the engine as M840T; M840TE is the label used by parts suppliers.",
				},
				PrimarySources: m840tSources,
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used in McLaren's **grand tourer** models.",
			Rows: []ModelRow{
				model("McLaren", "GT", "2019–2023", "Coupe", "McLaren GT parts catalogue"),
				model("McLaren", "GTS", "2023–2024", "Coupe", "McLaren GTS press release"),
			},
			GuidanceTitle: "Identifying the GT engine",
			GuidanceText:  "Check the calibration code on the plenum label; GT engines carry their own turbocharger part numbers.",
		},
		BannerImage: "/public/images/engines/mclaren-m840t-e.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known GT engine issues",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "Shares the M840T's ancillary weak points; the softer tune is otherwise unstressed.",
				Gradient:    mclarenGradient,
			},
			Issues: m840tIssues,
		},
		FAQs: []FAQ{
			{Question: "Does the McLaren GT use the same engine as the 720S?", Answer: "It uses the same 4.0-litre M840T architecture with smaller turbochargers and a milder tune."},
			{Question: "How much power does the McLaren GT make?", Answer: "620 PS, or 635 PS in the GTS."},
		},
	},
)

var m840ts = withGraph(
	mclarenGraph("m840t-s", "McLaren M840T 4.0L Twin-Turbo V8 (765LT / 750S)").
		figures(3994, 563, 800, "2020/2025", "McLaren M840T", "765LT engine", "750S engine"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M840T (765LT / 750S) Engine Review: Specs & Reliability",
			Description: "The high-output M840T in the 765LT and 750S: forged pistons, 765 PS and 800 N·m. Specifications and known issues.",
		},
		Hero: Hero{
			Years: "(2020–2025)",
			Intro: []string{
				"The 765LT introduced a higher-output M840T with forged aluminium pistons, a three-layer head gasket and an uprated fuel pump. It makes 765 PS and 800 N·m.",
				"The 750S, which replaced the 720S in 2023, uses a closely related calibration producing 750 PS.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the high-output M840T in the 765LT and 750S.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M840T", "McLaren 765LT press release, 2020"),
				spec("Displacement", "3,994 cc", "McLaren 765LT press release, 2020"),
				spec("Pistons", "Forged aluminium", "McLaren 765LT press release, 2020"),
				spec("Maximum power", "765 PS (563 kW) (765LT); 750 PS (552 kW) (750S)", "McLaren 765LT and 750S press releases"),
				spec("Maximum torque", "800 N·m", "McLaren 765LT press release, 2020"),
				spec("Rev limit", "8,500 rpm", "McLaren 765LT owner's handbook"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "Track use",
				Content: "These engines are often tracked. Check for oil consumption and coolant loss after track days, and shorten plug and oil intervals for regular circuit use.",
				DataVerificationNotes: map[string]string{
					"750S torque": "McLaren quotes 800 N·m for both the 765LT and the 750S.",
				},
				PrimarySources: m840tSources,
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used in the **765LT** and its successor the **750S**.",
			Rows: []ModelRow{
				model("McLaren", "765LT", "2020–2022", "Coupe, Spider", "McLaren 765LT parts catalogue"),
				model("McLaren", "750S", "2023–2025", "Coupe, Spider", "McLaren 750S press release"),
			},
			GuidanceTitle: "Identifying the high-output M840T",
			GuidanceText:  "The forged-piston engine has a distinct engine part number on the build record; the calibration code confirms 765LT or 750S tune.",
		},
		BannerImage: "/public/images/engines/mclaren-m840t-s.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known issues in the 765LT and 750S",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "Strengthened internals; ancillaries are the same as the 720S engine.",
				Gradient:    mclarenGradient,
			},
			Issues: m840tIssues,
		},
		FAQs: []FAQ{
			{Question: "How is the 765LT engine different from the 720S engine?", Answer: "It has forged pistons, a three-layer head gasket, an uprated fuel pump and a higher-output calibration."},
			{Question: "How much power does the 750S make?", Answer: "750 PS and 800 N·m."},
		},
	},
)

var m840tr = withGraph(
	mclarenGraph("m840t-r", "McLaren M840TR 4.0L Twin-Turbo V8 (Senna / Elva)").
		figures(3994, 588, 800, "2018/2021", "McLaren M840TR", "McLaren Senna engine", "Elva engine"),
	EnginePageData{
		Metadata: Metadata{
			Title:       "McLaren M840TR (Senna / Elva) Engine Review: Specs & Reliability",
			Description: "The M840TR is the most powerful M840T derivative, fitted to the McLaren Senna, Senna GTR and Elva.",
		},
		Hero: Hero{
			Years: "(2018–2021)",
			Intro: []string{
				"The McLaren Senna's M840TR uses dry-sump lubrication, lightweight internals and a bespoke calibration to produce 800 PS, the highest output of any M840T derivative at launch.",
				"The Elva open-top roadster used a version rated at 815 PS.",
			},
			Disclaimer: mclarenDisclaimer,
		},
		TechnicalSpecifications: TechnicalSpecifications{
			Description: "Specification of the M840TR in the Ultimate Series cars.",
			EngineSpecs: []SpecRow{
				spec("Engine code", "M840T", "McLaren Senna press kit, 2018"),
				spec("Displacement", "3,994 cc", "McLaren Senna press kit, 2018"),
				spec("Maximum power", "800 PS (588 kW) (Senna); 825 PS (607 kW) (Senna GTR); 815 PS (599 kW) (Elva)", "McLaren Ultimate Series press releases"),
				spec("Maximum torque", "800 N·m", "McLaren Senna press kit, 2018"),
				spec("Rev limit", "8,250 rpm", "McLaren Senna owner's handbook"),
			},
			PracticalImplications: PracticalImplications{
				Heading: "Ultimate Series ownership",
				Content: "Low-volume cars with exacting maintenance schedules. Servicing is normally through McLaren retailers with factory-trained technicians.",
				DataVerificationNotes: map[string]string{
					"Senna GTR": "The Senna GTR is a track-only car and its figure is not road-homologated.",
				},
				PrimarySources: m840tSources,
			},
		},
		CompatibleModels: CompatibleModels{
			Description: "Used only in **Ultimate Series** cars.",
			Rows: []ModelRow{
				model("McLaren", "Senna", "2018–2019", "Coupe (500 built)", "McLaren Senna press kit"),
				model("McLaren", "Senna GTR", "2019–2020", "Track-only coupe", "McLaren Senna GTR press release"),
				model("McLaren", "Elva", "2020–2021", "Roadster", "McLaren Elva press release"),
			},
			GuidanceTitle: "Identifying an Ultimate Series engine",
			GuidanceText:  "Each car's build book records its engine serial number and calibration.",
			ExtraNotes: []NoteGroup{
				{
					Name: "Production numbers",
					Fields: map[string][]string{
						"Senna":     {"500 road cars"},
						"Senna GTR": {"75 track cars"},
						"Elva":      {"149 cars"},
					},
				},
			},
		},
		BannerImage: "/public/images/engines/mclaren-m840t-r.jpg",
		CommonReliabilityIssues: ReliabilitySection{
			Subheading: "Known Senna and Elva engine issues",
			InfoBlock: InfoBlock{
				Title:       "Overall reliability",
				Description: "Shares ancillary components with the 720S engine; low mileages mean age-related seals matter more than wear.",
				Gradient:    mclarenGradient,
			},
			Issues: m840tIssues,
		},
		FAQs: []FAQ{
			{Question: "How powerful is the McLaren Senna engine?", Answer: "800 PS and 800 N·m; the track-only Senna GTR makes 825 PS."},
			{Question: "Does the Elva use the same engine as the Senna?", Answer: "Yes, an M840T derivative rated at 815 PS."},
		},
	},
)
