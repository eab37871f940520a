package list_complaints

import (
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/service/bookings/models"
)

// ComplaintResponse HTTP response model
type ComplaintResponse struct {
	ID              string `json:"id"`
	CategoryName    string `json:"category_name"`
	SubcategoryName string `json:"subcategory_name"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// ComplaintsResponse жалобы, разделённые на вкладки
type ComplaintsResponse struct {
	Pending  []ComplaintResponse `json:"pending"`
	Resolved []ComplaintResponse `json:"resolved"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ComplaintsResponse) *ComplaintsResponse {
	return &ComplaintsResponse{
		Pending:  toResponses(resp.Pending),
		Resolved: toResponses(resp.Resolved),
	}
}

func toResponses(list []*domain.Complaint) []ComplaintResponse {
	res := make([]ComplaintResponse, 0, len(list))
	for _, c := range list {
		res = append(res, ComplaintResponse{
			ID:              c.ID,
			CategoryName:    c.CategoryName,
			SubcategoryName: c.SubcategoryName,
			Description:     c.Description,
			Status:          c.Status,
			CreatedAt:       c.CreatedAt,
		})
	}
	return res
}
