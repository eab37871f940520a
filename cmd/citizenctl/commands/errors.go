package commands

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
	"github.com/m04kA/SMC-CitizenClient/internal/service/session"
)

var errNotLoggedIn = errors.New("not logged in, run `citizenctl login` first")

// userError текст ошибки для терминала: сообщения формы и сервера вместо цепочки обёрток
func userError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, session.ErrNoSession) {
		return errNotLoggedIn
	}

	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return errors.New(strings.Join(verrs.Messages(), "\n"))
	}
	return errors.New(strings.Join(citizenapi.UserMessages(err, fallback), "\n"))
}
