package citizenapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// ListMandaps получает список залов
func (c *Client) ListMandaps(ctx context.Context, token string) ([]*domain.Mandap, error) {
	var wire []Mandap
	err := c.doJSON(ctx, request{
		endpoint: "catalog.mandaps",
		method:   http.MethodGet,
		path:     "/api/event_klm/mandaps/",
		token:    token,
	}, &wire)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Mandap, 0, len(wire))
	for i := range wire {
		res = append(res, c.toDomainMandap(&wire[i]))
	}
	return res, nil
}

// GetMandap получает зал по идентификатору
func (c *Client) GetMandap(ctx context.Context, token, id string) (*domain.Mandap, error) {
	var wire Mandap
	err := c.doJSON(ctx, request{
		endpoint: "catalog.mandap",
		method:   http.MethodGet,
		path:     "/api/event_klm/mandaps/" + url.PathEscape(id) + "/",
		token:    token,
	}, &wire)
	if err != nil {
		return nil, err
	}
	return c.toDomainMandap(&wire), nil
}

// ListComplaintCategories получает категории жалоб с подкатегориями
func (c *Client) ListComplaintCategories(ctx context.Context, token string) ([]*domain.Category, error) {
	return c.listCategories(ctx, "catalog.complaint_categories", "/api/complaint_mgmt/categories/", token)
}

// ListPollutionCategories получает виды загрязнений с причинами
func (c *Client) ListPollutionCategories(ctx context.Context, token string) ([]*domain.Category, error) {
	return c.listCategories(ctx, "catalog.pollution_categories", "/api/pollution_mgmt/categories/", token)
}

// ListUserComplaints получает жалобы пользователя
func (c *Client) ListUserComplaints(ctx context.Context, token string) ([]*domain.Complaint, error) {
	var wire []Complaint
	err := c.doJSON(ctx, request{
		endpoint: "complaints.list",
		method:   http.MethodGet,
		path:     "/api/complaints/user/",
		token:    token,
	}, &wire)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Complaint, 0, len(wire))
	for _, w := range wire {
		res = append(res, &domain.Complaint{
			ID:              w.ID.String(),
			CategoryName:    w.CategoryName.String(),
			SubcategoryName: w.SubcategoryName.String(),
			Description:     w.Description.String(),
			Status:          w.Status.String(),
			CreatedAt:       w.CreatedAt.String(),
		})
	}
	return res, nil
}

func (c *Client) listCategories(ctx context.Context, endpoint, path, token string) ([]*domain.Category, error) {
	var wire []Category
	err := c.doJSON(ctx, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     path,
		token:    token,
	}, &wire)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Category, 0, len(wire))
	for _, w := range wire {
		cat := &domain.Category{ID: w.ID.String(), Name: w.Name.String()}
		for _, sub := range w.Subcategories {
			cat.Subcategories = append(cat.Subcategories, domain.Subcategory{
				ID:   sub.ID.String(),
				Name: sub.Name.String(),
			})
		}
		res = append(res, cat)
	}
	return res, nil
}

func (c *Client) toDomainMandap(w *Mandap) *domain.Mandap {
	images := make([]string, 0, len(w.Images))
	for _, img := range w.Images {
		if img != "" {
			images = append(images, c.AbsoluteURL(string(img)))
		}
	}
	return &domain.Mandap{
		ID:                 w.ID.String(),
		Name:               w.Name.String(),
		Description:        w.Description.String(),
		Address:            w.Address.String(),
		ContactNumber:      w.ContactNumber.String(),
		Capacity:           w.Capacity.String(),
		Amenities:          w.Amenities.String(),
		MinimumBookingUnit: w.MinimumBookingUnit.String(),
		PriceRange:         w.PriceRange.String(),
		PriceNote:          w.PriceNote.String(),
		Images:             images,
	}
}
