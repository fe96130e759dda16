package content

const (
	mclarenName = "McLaren"
	mclarenURL  = "https://cars.mclaren.com/"

	mclarenPublished = "2024-03-18"
	mclarenModified  = "2025-01-22"
)

var mclarenDisclaimer = Disclaimer{
	Title: "Independent research notice",
	Text: "Engine Pages is an independent publication and is not affiliated with, sponsored by or endorsed by McLaren Automotive. " +
		"Figures are compiled from manufacturer press material and service literature. Confirm part numbers and procedures against " +
		"the build record for a specific VIN before buying parts or carrying out work.",
}

const mclarenGradient = "bg-gradient-to-r from-amber-50 to-orange-100 border-l-4 border-orange-500"

var mclaren = BrandData{
	Name: mclarenName,
	ResearchResources: ResearchResources{
		ServiceManual:   "https://cars.mclaren.com/en/ownership/service-and-maintenance",
		ServiceBulletin: "https://www.nhtsa.gov/vehicle-manufacturers/mclaren-automotive",
	},
	HeroImage: Image{
		Src: "/public/images/brands/mclaren-hero.jpg",
		Alt: "McLaren twin-turbocharged V8 engine bay viewed from above",
	},
	Engines: map[string]EnginePageData{
		"m838t":   m838t,
		"m838te":  m838te,
		"m838tq":  m838tq,
		"m840t":   m840t,
		"m840t-e": m840te,
		"m840t-s": m840ts,
		"m840t-r": m840tr,
		"m630":    m630,
	},
}

func mclarenGraph(engine, name string) pageGraph {
	return pageGraph{
		brand:           mclarenName,
		brandSlug:       "mclaren",
		engineSlug:      engine,
		manufacturerURL: mclarenURL,
		name:            name,
		engineType:      "Twin-turbocharged V8, flat-plane crankshaft",
		fuelType:        "Petrol (RON 98)",
		published:       mclarenPublished,
		modified:        mclarenModified,
	}
}

func (g pageGraph) figures(cc, kw, nm float64, production string, keywords ...string) pageGraph {
	g.displacementCC = cc
	g.powerKW = kw
	g.torqueNm = nm
	g.production = production
	g.keywords = keywords
	return g
}
