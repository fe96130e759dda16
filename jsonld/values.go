package jsonld

import "encoding/json"

// Ref points at another node by "@id".
type Ref struct {
	ID string `json:"@id"`
}

// Organization is a publisher, author or manufacturer.
type Organization struct {
	Name string       `json:"name"`
	URL  string       `json:"url,omitempty"`
	Logo *ImageObject `json:"logo,omitempty"`
}

func (o Organization) MarshalJSON() ([]byte, error) {
	type plain Organization
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"Organization", plain(o)})
}

// ImageObject references an image by URL.
type ImageObject struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

func (i ImageObject) MarshalJSON() ([]byte, error) {
	type plain ImageObject
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"ImageObject", plain(i)})
}

// Question is one FAQ entry.
type Question struct {
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	type plain Question
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"Question", plain(q)})
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Text string `json:"text"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	type plain Answer
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"Answer", plain(a)})
}

// QuantitativeValue is a number with a UN/CEFACT unit code.
type QuantitativeValue struct {
	Value    float64 `json:"value"`
	UnitCode string  `json:"unitCode"`
	UnitText string  `json:"unitText,omitempty"`
}

func (v QuantitativeValue) MarshalJSON() ([]byte, error) {
	type plain QuantitativeValue
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"QuantitativeValue", plain(v)})
}

// PropertyValue is a free-form name/value pair.
type PropertyValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p PropertyValue) MarshalJSON() ([]byte, error) {
	type plain PropertyValue
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"PropertyValue", plain(p)})
}

// DataDownload is one distribution of a Dataset.
type DataDownload struct {
	EncodingFormat string `json:"encodingFormat"`
	ContentURL     string `json:"contentUrl"`
}

func (d DataDownload) MarshalJSON() ([]byte, error) {
	type plain DataDownload
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"DataDownload", plain(d)})
}

// WebPageElement is a named section of an Article. ExpertConsiderations
// summarises the reliability issues covered by the section.
type WebPageElement struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	ExpertConsiderations []string `json:"expertConsiderations,omitempty"`
}

func (e WebPageElement) MarshalJSON() ([]byte, error) {
	type plain WebPageElement
	return json.Marshal(struct {
		Type string `json:"@type"`
		plain
	}{"WebPageElement", plain(e)})
}
