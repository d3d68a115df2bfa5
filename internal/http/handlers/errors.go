package handlers

import (
	"github.com/pkg/errors"

	"vitrine/internal/api"
)

// errorMessage picks the user-facing text for a failed backend call.
// Backend responses already carry readable (pre-joined) messages; transport
// failures collapse into one generic line.
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Não foi possível falar com o servidor. Tente novamente."
}
