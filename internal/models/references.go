package models

// CountyReference is the reference entry for one county involved in a
// response.
type CountyReference struct {
	Name           string `json:"name"`
	SubCountyCount int    `json:"subCountyCount"`
}

// NewCountyReference creates a CountyReference.
func NewCountyReference(name string, subCountyCount int) CountyReference {
	return CountyReference{
		Name:           name,
		SubCountyCount: subCountyCount,
	}
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Counties []CountyReference `json:"counties"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Counties: []CountyReference{},
	}
}
