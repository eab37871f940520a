package get_catalog

import "github.com/m04kA/SMC-CitizenClient/internal/domain"

// MandapResponse HTTP response model
type MandapResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Address            string   `json:"address"`
	ContactNumber      string   `json:"contact_number"`
	Capacity           string   `json:"capacity"`
	Amenities          string   `json:"amenities"`
	MinimumBookingUnit string   `json:"minimum_booking_unit"`
	PriceRange         string   `json:"price_range"`
	PriceNote          string   `json:"price_note"`
	Images             []string `json:"images"`
}

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	IsOther       bool                  `json:"is_other"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// SubcategoryResponse HTTP response model
type SubcategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsOther bool   `json:"is_other"`
}

// FromMandap конвертирует зал в HTTP response
func FromMandap(m *domain.Mandap) *MandapResponse {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return &MandapResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Address:            m.Address,
		ContactNumber:      m.ContactNumber,
		Capacity:           m.Capacity,
		Amenities:          m.Amenities,
		MinimumBookingUnit: m.MinimumBookingUnit,
		PriceRange:         m.PriceRange,
		PriceNote:          m.PriceNote,
		Images:             images,
	}
}

// FromCategories конвертирует категории в HTTP response
func FromCategories(list []*domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		subs := make([]SubcategoryResponse, 0, len(c.Subcategories))
		for i := range c.Subcategories {
			s := &c.Subcategories[i]
			subs = append(subs, SubcategoryResponse{ID: s.ID, Name: s.Name, IsOther: s.IsOther()})
		}
		res = append(res, CategoryResponse{ID: c.ID, Name: c.Name, IsOther: c.IsOther(), Subcategories: subs})
	}
	return res
}
