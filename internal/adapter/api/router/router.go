package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupUserRouter(e)
	SetupProductRouter(e)
	SetupEngagementRouter(e)
	SetupOrderRouter(e)
	SetupHealthRouter(e)
}
