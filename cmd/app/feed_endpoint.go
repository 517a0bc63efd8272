package main

import (
	"net/http"

	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(g *echo.Group, fs *services.FeedService) {
	g.GET("/feed/facebook.csv", func(c echo.Context) error {
		data, err := fs.FacebookCSV(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="facebook-feed.csv"`)
		return c.Blob(http.StatusOK, "text/csv", data)
	})
}
