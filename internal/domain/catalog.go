package domain

import "strings"

// Mandap зал для мероприятий
type Mandap struct {
	ID                 string
	Name               string
	Description        string
	Address            string
	ContactNumber      string
	Capacity           string
	Amenities          string
	MinimumBookingUnit string
	PriceRange         string
	PriceNote          string
	Images             []string
}

// Category категория жалобы или загрязнения
type Category struct {
	ID            string
	Name          string
	Subcategories []Subcategory
}

// Subcategory подкатегория
type Subcategory struct {
	ID   string
	Name string
}

// IsOther категория "Other" требует ручного ввода
func (c *Category) IsOther() bool {
	return isOther(c.Name)
}

func (s *Subcategory) IsOther() bool {
	return isOther(s.Name)
}

func isOther(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), "other")
}

// Complaint жалоба пользователя из /api/complaints/user/
type Complaint struct {
	ID              string
	CategoryName    string
	SubcategoryName string
	Description     string
	Status          string
	CreatedAt       string
}

// ComplaintPendingStatuses статусы жалоб в работе
var ComplaintPendingStatuses = []string{"Submitted", "Under Review", "In Progress"}

// ComplaintResolvedStatuses статусы закрытых жалоб
var ComplaintResolvedStatuses = []string{"Resolved"}

// IsPending жалоба ещё в работе
func (c *Complaint) IsPending() bool {
	return containsString(ComplaintPendingStatuses, c.Status)
}

// IsResolved жалоба закрыта
func (c *Complaint) IsResolved() bool {
	return containsString(ComplaintResolvedStatuses, c.Status)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
