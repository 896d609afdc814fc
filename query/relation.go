package query

// RelationScope selects how strictly GetParents, GetChildren, and
// GetAncestors interpret a parent/child link.
type RelationScope string

const (
	// All matches every HUSB/WIFE/CHIL link in a family, regardless of
	// whether it is annotated as a natural relationship.
	All RelationScope = "ALL"

	// Natural restricts the walk to links where the child's _FREL or
	// _MREL vendor sub-tag carries the literal value "Natural",
	// excluding step- and adoptive relationships.
	Natural RelationScope = "NAT"
)
