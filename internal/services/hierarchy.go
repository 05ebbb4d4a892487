package services

import "github.com/projektarbeit/immobilienverwaltung/internal/models"

// UnitNode is one entry of the grouped unit listing. A header node carries
// only the shared address of a multi-unit building and lists the member
// units as children; a leaf node wraps a single unit with no children.
type UnitNode struct {
	Unit     models.Unit   `json:"unit"`
	Header   bool          `json:"header"`
	Children []models.Unit `json:"children,omitempty"`
}

// GroupUnitsByAddress groups a flat unit list by (street, house number,
// postal code) into a two-level display hierarchy. Groups of one stay
// standalone leaves; larger groups get a synthetic header node whose
// unit-specific fields are all zero, with the members in input order.
// Group order follows the first appearance of each address. The input is
// not mutated and nothing is persisted.
func GroupUnitsByAddress(units []models.Unit) []UnitNode {
	type group struct {
		members []models.Unit
	}
	order := make([]string, 0, len(units))
	groups := make(map[string]*group, len(units))

	for _, u := range units {
		key := u.Address.Street + "\x00" + u.Address.HouseNumber + "\x00" + u.Address.PostalCodeID
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, u)
	}

	nodes := make([]UnitNode, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if len(g.members) == 1 {
			nodes = append(nodes, UnitNode{Unit: g.members[0]})
			continue
		}
		first := g.members[0]
		header := models.Unit{
			Address: models.Address{
				Street:       first.Address.Street,
				HouseNumber:  first.Address.HouseNumber,
				PostalCodeID: first.Address.PostalCodeID,
				PostalCode:   first.Address.PostalCode,
			},
		}
		children := make([]models.Unit, len(g.members))
		copy(children, g.members)
		nodes = append(nodes, UnitNode{Unit: header, Header: true, Children: children})
	}
	return nodes
}
