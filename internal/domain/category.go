package domain

// IdeaCategory is the document key of an idea group.
type IdeaCategory string

const (
	CategoryEvening  IdeaCategory = "abends"
	CategoryDesign   IdeaCategory = "design_orte"
	CategoryCulinary IdeaCategory = "kulinarisch"
	CategoryCulture  IdeaCategory = "kultur_tipps"
	CategoryPhoto    IdeaCategory = "fotospots"
)

// AllCategories returns the idea categories in display order.
func AllCategories() []IdeaCategory {
	return []IdeaCategory{
		CategoryEvening,
		CategoryDesign,
		CategoryCulinary,
		CategoryCulture,
		CategoryPhoto,
	}
}

// Known reports whether c is one of the five document categories.
func (c IdeaCategory) Known() bool {
	switch c {
	case CategoryEvening, CategoryDesign, CategoryCulinary, CategoryCulture, CategoryPhoto:
		return true
	}
	return false
}
