// Package content holds the brand → engine → page table behind the engine
// review pages. The table is built once at package initialisation and never
// modified afterwards. Accessors hand out deep copies, so callers may edit
// what they get back and concurrent reads need no locking.
package content

import "github.com/eringen/enginepages/jsonld"

// BrandData groups the engines documented for one manufacturer.
type BrandData struct {
	Name              string                    `json:"name" yaml:"name"`
	ResearchResources ResearchResources         `json:"researchResources" yaml:"researchResources"`
	Engines           map[string]EnginePageData `json:"engines" yaml:"engines"`
	HeroImage         Image                     `json:"heroImage" yaml:"heroImage"`
}

// ResearchResources are the reference documents cited for a brand.
type ResearchResources struct {
	ServiceManual   string `json:"serviceManual" yaml:"serviceManual"`
	ServiceBulletin string `json:"serviceBulletin" yaml:"serviceBulletin"`
}

// Image is a root-relative image path with its alt text.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// EnginePageData is everything rendered on one engine review page.
type EnginePageData struct {
	Metadata                Metadata                `json:"metadata" yaml:"metadata"`
	Hero                    Hero                    `json:"hero" yaml:"hero"`
	TechnicalSpecifications TechnicalSpecifications `json:"technicalSpecifications" yaml:"technicalSpecifications"`
	CompatibleModels        CompatibleModels        `json:"compatibleModels" yaml:"compatibleModels"`
	BannerImage             string                  `json:"bannerImage" yaml:"bannerImage"`
	CommonReliabilityIssues ReliabilitySection      `json:"commonReliabilityIssues" yaml:"commonReliabilityIssues"`
	FAQs                    []FAQ                   `json:"faqs" yaml:"faqs"`
	Schema                  jsonld.Graph            `json:"schema" yaml:"schema"`
}

// Metadata feeds the page <head>. Either field may be empty.
type Metadata struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Hero is the top-of-page introduction.
type Hero struct {
	Years      string     `json:"years" yaml:"years"`
	Intro      []string   `json:"intro" yaml:"intro"`
	Disclaimer Disclaimer `json:"disclaimer" yaml:"disclaimer"`
}

// Disclaimer is the compliance note shown under the hero.
type Disclaimer struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

// TechnicalSpecifications is the spec table and its commentary.
type TechnicalSpecifications struct {
	Description           string                `json:"description" yaml:"description"`
	EngineSpecs           []SpecRow             `json:"engineSpecs" yaml:"engineSpecs"`
	PracticalImplications PracticalImplications `json:"practicalImplications" yaml:"practicalImplications"`
}

// SpecRow is one parameter of the spec table with its citation.
type SpecRow struct {
	Parameter string `json:"parameter" yaml:"parameter"`
	Value     string `json:"value" yaml:"value"`
	Source    string `json:"source" yaml:"source"`
}

// PracticalImplications explains what the numbers mean for an owner.
type PracticalImplications struct {
	Heading               string            `json:"heading" yaml:"heading"`
	Content               string            `json:"content" yaml:"content"`
	DataVerificationNotes map[string]string `json:"dataVerificationNotes" yaml:"dataVerificationNotes"`
	PrimarySources        []string          `json:"primarySources" yaml:"primarySources"`
}

// Column names used by compatible-model rows. Rows may carry other columns.
const (
	ColMake      = "Make"
	ColModels    = "Models"
	ColYears     = "Years"
	ColVariants  = "Variants"
	ColOEMSource = "OEM Source"
)

// DefaultColumns is the column order used when a table does not set one.
var DefaultColumns = []string{ColMake, ColModels, ColYears, ColVariants, ColOEMSource}

// ModelRow is one row of the compatible-vehicle table keyed by column name.
type ModelRow map[string]string

// CompatibleModels lists the vehicles an engine was fitted to. Description
// may contain inline markup (see package markdown).
type CompatibleModels struct {
	Description   string      `json:"description" yaml:"description"`
	Columns       []string    `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows          []ModelRow  `json:"compatibleModels" yaml:"compatibleModels"`
	GuidanceTitle string      `json:"guidanceTitle" yaml:"guidanceTitle"`
	GuidanceText  string      `json:"guidanceText" yaml:"guidanceText"`
	ExtraNotes    []NoteGroup `json:"extraNotes,omitempty" yaml:"extraNotes,omitempty"`
}

// TableColumns returns the render order of the compatible-model columns.
func (c CompatibleModels) TableColumns() []string {
	if len(c.Columns) > 0 {
		return c.Columns
	}
	return DefaultColumns
}

// NoteGroup is a labelled group of free-form fields. Field names differ
// between groups, so consumers must iterate them generically.
type NoteGroup struct {
	Name   string              `json:"name" yaml:"name"`
	Fields map[string][]string `json:"fields" yaml:"fields"`
}

// ReliabilitySection is the known-issues part of the page.
type ReliabilitySection struct {
	Subheading string    `json:"subheading" yaml:"subheading"`
	InfoBlock  InfoBlock `json:"infoBlock" yaml:"infoBlock"`
	Issues     []Issue   `json:"issues" yaml:"issues"`
}

// InfoBlock is a highlighted callout. Gradient is a CSS class list.
type InfoBlock struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Gradient    string `json:"gradient" yaml:"gradient"`
}

// Issue is one known reliability problem.
type Issue struct {
	Title    string `json:"title" yaml:"title"`
	Symptoms string `json:"symptoms" yaml:"symptoms"`
	Cause    string `json:"cause" yaml:"cause"`
	Fix      string `json:"fix" yaml:"fix"`
}

// FAQ is one question and answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
