package payload

import (
	"net/http"
	"strings"

	"github.com/jellydator/validation"
)

const usernameParam = "username"

type GasRequest struct {
	Username string
}

// NewGasRequest reads the username query parameter of r.
func NewGasRequest(r *http.Request) GasRequest {
	return GasRequest{
		Username: strings.TrimSpace(r.URL.Query().Get(usernameParam)),
	}
}

func (g GasRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Username, validation.Required, validation.Length(1, 256)),
	)
}
