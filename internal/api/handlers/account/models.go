package account

import "github.com/m04kA/SMC-CitizenClient/internal/domain"

// ProfileDTO HTTP request/response model
type ProfileDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
}

// ToDomain конвертирует HTTP модель в профиль
func (p *ProfileDTO) ToDomain() *domain.Profile {
	return &domain.Profile{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		DOB:       p.DOB,
		Address:   p.Address,
		Pincode:   p.Pincode,
	}
}

// FromDomain конвертирует профиль в HTTP модель
func FromDomain(p *domain.Profile) *ProfileDTO {
	return &ProfileDTO{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		DOB:       p.DOB,
		Address:   p.Address,
		Pincode:   p.Pincode,
	}
}
