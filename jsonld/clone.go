package jsonld

import "slices"

// Clone returns a deep copy of g. Node values are copied along with every
// pointer and slice they hold, so the copy can be modified freely.
func (g Graph) Clone() Graph {
	if g.Nodes == nil {
		return g
	}
	nodes := make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = cloneNode(n)
	}
	return Graph{Context: g.Context, Nodes: nodes}
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case WebPage:
		n.IsPartOf = ptr(n.IsPartOf)
		n.About = ptr(n.About)
		n.PrimaryImageOfPage = ptr(n.PrimaryImageOfPage)
		return n
	case WebSite:
		n.Publisher = n.Publisher.clone()
		return n
	case Article:
		n.Author = n.Author.clone()
		n.Publisher = n.Publisher.clone()
		n.MainEntityOfPage = ptr(n.MainEntityOfPage)
		n.Image = ptr(n.Image)
		n.About = ptr(n.About)
		if n.HasPart != nil {
			part := *n.HasPart
			part.ExpertConsiderations = slices.Clone(part.ExpertConsiderations)
			n.HasPart = &part
		}
		return n
	case VehicleEngine:
		n.EngineDisplacement = ptr(n.EngineDisplacement)
		n.EnginePower = ptr(n.EnginePower)
		n.Torque = ptr(n.Torque)
		n.Manufacturer = n.Manufacturer.clone()
		n.AdditionalProperty = slices.Clone(n.AdditionalProperty)
		return n
	case Dataset:
		n.Creator = n.Creator.clone()
		n.Keywords = slices.Clone(n.Keywords)
		n.VariableMeasured = slices.Clone(n.VariableMeasured)
		n.Citation = slices.Clone(n.Citation)
		n.Distribution = slices.Clone(n.Distribution)
		return n
	case FAQPage:
		n.MainEntity = slices.Clone(n.MainEntity)
		return n
	default:
		return n
	}
}

func (o *Organization) clone() *Organization {
	if o == nil {
		return nil
	}
	c := *o
	c.Logo = ptr(o.Logo)
	return &c
}

// ptr copies the value behind p into a new allocation.
func ptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
