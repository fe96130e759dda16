package content

import (
	"strings"

	"github.com/eringen/enginepages/jsonld"
)

// BaseURL is the canonical origin the structured data is published under.
const BaseURL = "https://www.enginepages.net"

// PublisherName is the site name used in structured data.
const PublisherName = "Engine Pages"

// EnginePath returns the root-relative path of an engine page.
func EnginePath(brand, engine string) string {
	return "/engines/" + brand + "/" + engine + "/"
}

// pageGraph carries the structured-data facts that are not already part of
// the page body. build derives the rest from the page so the FAQ and
// reliability sections cannot drift from their schema.org copies.
type pageGraph struct {
	brand           string
	brandSlug       string
	engineSlug      string
	manufacturerURL string
	name            string
	engineType      string
	fuelType        string
	displacementCC  float64
	powerKW         float64
	torqueNm        float64
	production      string
	published       string
	modified        string
	keywords        []string
}

func (g pageGraph) build(p EnginePageData) jsonld.Graph {
	pageURL := BaseURL + EnginePath(g.brandSlug, g.engineSlug)
	publisher := &jsonld.Organization{
		Name: PublisherName,
		URL:  BaseURL + "/",
		Logo: &jsonld.ImageObject{URL: BaseURL + "/public/logo.png"},
	}
	image := &jsonld.ImageObject{URL: BaseURL + p.BannerImage, Caption: g.name}
	engineRef := &jsonld.Ref{ID: pageURL + "#engine"}

	var intro string
	if len(p.Hero.Intro) > 0 {
		intro = p.Hero.Intro[0]
	}

	considerations := make([]string, 0, len(p.CommonReliabilityIssues.Issues))
	for _, is := range p.CommonReliabilityIssues.Issues {
		considerations = append(considerations, is.Title)
	}

	props := make([]jsonld.PropertyValue, 0, len(p.TechnicalSpecifications.EngineSpecs))
	measured := make([]string, 0, len(p.TechnicalSpecifications.EngineSpecs))
	for _, r := range p.TechnicalSpecifications.EngineSpecs {
		props = append(props, jsonld.PropertyValue{Name: r.Parameter, Value: r.Value})
		measured = append(measured, r.Parameter)
	}

	questions := make([]jsonld.Question, 0, len(p.FAQs))
	for _, f := range p.FAQs {
		questions = append(questions, jsonld.Question{
			Name:           f.Question,
			AcceptedAnswer: jsonld.Answer{Text: f.Answer},
		})
	}

	return jsonld.New(
		jsonld.WebPage{
			ID:                 pageURL + "#webpage",
			URL:                pageURL,
			Name:               p.Metadata.Title,
			Description:        p.Metadata.Description,
			InLanguage:         "en",
			IsPartOf:           &jsonld.Ref{ID: BaseURL + "/#website"},
			About:              engineRef,
			PrimaryImageOfPage: image,
			DatePublished:      g.published,
			DateModified:       g.modified,
		},
		jsonld.WebSite{
			ID:          BaseURL + "/#website",
			URL:         BaseURL + "/",
			Name:        PublisherName,
			Description: "Independent engine reviews: specifications, reliability issues and compatible models.",
			Publisher:   publisher,
		},
		jsonld.Article{
			ID:               pageURL + "#article",
			Headline:         g.name + " review: specs, reliability and compatible models",
			Description:      intro,
			Author:           publisher,
			Publisher:        publisher,
			DatePublished:    g.published,
			DateModified:     g.modified,
			MainEntityOfPage: &jsonld.Ref{ID: pageURL + "#webpage"},
			Image:            image,
			About:            engineRef,
			Keywords:         strings.Join(g.keywords, ", "),
			HasPart: &jsonld.WebPageElement{
				Name:                 p.CommonReliabilityIssues.Subheading,
				Description:          p.CommonReliabilityIssues.InfoBlock.Description,
				ExpertConsiderations: considerations,
			},
		},
		jsonld.VehicleEngine{
			ID:                 pageURL + "#engine",
			Name:               g.name,
			Description:        p.TechnicalSpecifications.Description,
			EngineType:         g.engineType,
			FuelType:           g.fuelType,
			EngineDisplacement: &jsonld.QuantitativeValue{Value: g.displacementCC, UnitCode: "CMQ", UnitText: "cc"},
			EnginePower:        &jsonld.QuantitativeValue{Value: g.powerKW, UnitCode: "KWT", UnitText: "kW"},
			Torque:             &jsonld.QuantitativeValue{Value: g.torqueNm, UnitCode: "NU", UnitText: "N·m"},
			Manufacturer:       &jsonld.Organization{Name: g.brand, URL: g.manufacturerURL},
			ProductionDate:     g.production,
			AdditionalProperty: props,
		},
		jsonld.Dataset{
			ID:               pageURL + "#dataset",
			Name:             g.name + " technical specifications",
			Description:      p.TechnicalSpecifications.Description,
			URL:              pageURL,
			Creator:          publisher,
			License:          "https://creativecommons.org/licenses/by/4.0/",
			Keywords:         g.keywords,
			VariableMeasured: measured,
			Citation:         p.TechnicalSpecifications.PracticalImplications.PrimarySources,
			Distribution: []jsonld.DataDownload{
				{EncodingFormat: "application/ld+json", ContentURL: pageURL + "schema.json"},
				{EncodingFormat: "text/markdown", ContentURL: pageURL + "index.md"},
			},
		},
		jsonld.FAQPage{
			ID:         pageURL + "#faq",
			MainEntity: questions,
		},
	)
}

// withGraph attaches the structured data built from g to p.
func withGraph(g pageGraph, p EnginePageData) EnginePageData {
	p.Schema = g.build(p)
	return p
}

func spec(parameter, value, source string) SpecRow {
	return SpecRow{Parameter: parameter, Value: value, Source: source}
}

func model(mk, models, years, variants, source string) ModelRow {
	return ModelRow{
		ColMake:      mk,
		ColModels:    models,
		ColYears:     years,
		ColVariants:  variants,
		ColOEMSource: source,
	}
}
