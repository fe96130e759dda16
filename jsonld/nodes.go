package jsonld

import "encoding/json"

// WebPage describes the engine review page itself.
type WebPage struct {
	ID                 string       `json:"@id"`
	URL                string       `json:"url"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	InLanguage         string       `json:"inLanguage,omitempty"`
	IsPartOf           *Ref         `json:"isPartOf,omitempty"`
	About              *Ref         `json:"about,omitempty"`
	PrimaryImageOfPage *ImageObject `json:"primaryImageOfPage,omitempty"`
	DatePublished      string       `json:"datePublished,omitempty"`
	DateModified       string       `json:"dateModified,omitempty"`
}

func (WebPage) Type() string { return TypeWebPage }
func (WebPage) node()        {}

func (n WebPage) MarshalJSON() ([]byte, error) {
	type plain WebPage
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeWebPage, plain(n)})
}

// WebSite describes the publishing site.
type WebSite struct {
	ID          string        `json:"@id"`
	URL         string        `json:"url"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Publisher   *Organization `json:"publisher,omitempty"`
}

func (WebSite) Type() string { return TypeWebSite }
func (WebSite) node()        {}

func (n WebSite) MarshalJSON() ([]byte, error) {
	type plain WebSite
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeWebSite, plain(n)})
}

// Article is the editorial review wrapped around the engine data.
type Article struct {
	ID               string          `json:"@id"`
	Headline         string          `json:"headline"`
	Description      string          `json:"description,omitempty"`
	Author           *Organization   `json:"author,omitempty"`
	Publisher        *Organization   `json:"publisher,omitempty"`
	DatePublished    string          `json:"datePublished,omitempty"`
	DateModified     string          `json:"dateModified,omitempty"`
	MainEntityOfPage *Ref            `json:"mainEntityOfPage,omitempty"`
	Image            *ImageObject    `json:"image,omitempty"`
	About            *Ref            `json:"about,omitempty"`
	Keywords         string          `json:"keywords,omitempty"`
	HasPart          *WebPageElement `json:"hasPart,omitempty"`
}

func (Article) Type() string { return TypeArticle }
func (Article) node()        {}

func (n Article) MarshalJSON() ([]byte, error) {
	type plain Article
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeArticle, plain(n)})
}

// VehicleEngine carries the machine-readable engine specification.
type VehicleEngine struct {
	ID                 string             `json:"@id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	EngineType         string             `json:"engineType,omitempty"`
	FuelType           string             `json:"fuelType,omitempty"`
	EngineDisplacement *QuantitativeValue `json:"engineDisplacement,omitempty"`
	EnginePower        *QuantitativeValue `json:"enginePower,omitempty"`
	Torque             *QuantitativeValue `json:"torque,omitempty"`
	Manufacturer       *Organization      `json:"manufacturer,omitempty"`
	ProductionDate     string             `json:"productionDate,omitempty"`
	AdditionalProperty []PropertyValue    `json:"additionalProperty,omitempty"`
}

func (VehicleEngine) Type() string { return TypeVehicleEngine }
func (VehicleEngine) node()        {}

func (n VehicleEngine) MarshalJSON() ([]byte, error) {
	type plain VehicleEngine
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeVehicleEngine, plain(n)})
}

// Dataset publishes the specification table as a citable dataset.
type Dataset struct {
	ID               string         `json:"@id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	URL              string         `json:"url"`
	Creator          *Organization  `json:"creator,omitempty"`
	License          string         `json:"license,omitempty"`
	Keywords         []string       `json:"keywords,omitempty"`
	VariableMeasured []string       `json:"variableMeasured,omitempty"`
	Citation         []string       `json:"citation,omitempty"`
	Distribution     []DataDownload `json:"distribution,omitempty"`
}

func (Dataset) Type() string { return TypeDataset }
func (Dataset) node()        {}

func (n Dataset) MarshalJSON() ([]byte, error) {
	type plain Dataset
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeDataset, plain(n)})
}

// FAQPage mirrors the page FAQ list.
type FAQPage struct {
	ID         string     `json:"@id"`
	MainEntity []Question `json:"mainEntity"`
}

func (FAQPage) Type() string { return TypeFAQPage }
func (FAQPage) node()        {}

func (n FAQPage) MarshalJSON() ([]byte, error) {
	type plain FAQPage
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{TypeFAQPage, plain(n)})
}
