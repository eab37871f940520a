package citizenapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

// GetAccountDetails получает профиль пользователя
func (c *Client) GetAccountDetails(ctx context.Context, token string) (*domain.Profile, error) {
	var resp accountResponse
	err := c.doJSON(ctx, request{
		endpoint: "account.get",
		method:   http.MethodGet,
		path:     "/api/account-details/",
		token:    token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.UserDetails.ToDomain(), nil
}

// UpdateAccountDetails обновляет профиль пользователя
func (c *Client) UpdateAccountDetails(ctx context.Context, token string, profile *domain.Profile) error {
	r, err := jsonRequest("account.update", http.MethodPut, "/api/updateaccount-details/", token, UpdateAccountRequest{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		DOB:       profile.DOB,
		Address:   profile.Address,
		Pincode:   profile.Pincode,
	})
	if err != nil {
		return err
	}
	_, err = c.send(ctx, r)
	return err
}

// ToDomain конвертирует в доменную модель
func (a *AccountDetails) ToDomain() *domain.Profile {
	return &domain.Profile{
		FirstName: a.FirstName.String(),
		LastName:  a.LastName.String(),
		Email:     a.Email.String(),
		DOB:       a.DOB.String(),
		Address:   a.Address.String(),
		Pincode:   a.Pincode.String(),
	}
}
