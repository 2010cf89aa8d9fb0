package echo

import (
	"net/http"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	echofw "github.com/labstack/echo/v4"
)

func HTTPErrorHandler(err error, c echofw.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := err.(*domain.AppError); ok {
		_ = c.JSON(appErr.HTTPCode, appErr)
		return
	}

	if echoErr, ok := err.(*echofw.HTTPError); ok {
		_ = c.JSON(echoErr.Code, map[string]any{
			"code":     "HTTP_ERROR",
			"messages": []string{http.StatusText(echoErr.Code)},
		})
		return
	}

	internal := domain.ErrInternal("an unexpected error occurred")
	_ = c.JSON(internal.HTTPCode, internal)
}
