package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func CustomHTTPErrorHandler(err error, c echo.Context) {
	v := ValidationError{}
	if errors.As(err, &v) {
		if c.Response().Committed {
			return
		}
		if err := c.JSON(http.StatusBadRequest, echo.Map{"message": v.Error(), "errors": v.Fields}); err != nil {
			c.Logger().Error(err)
		}
		return
	}

	e := HttpError{}
	if errors.As(err, &e) {
		c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, err.Error()), c)
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
