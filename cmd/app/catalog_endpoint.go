package main

import (
	"net/http"
	"strconv"

	"github.com/RanganathP76/ecommerce-frontend/internal/backend"
	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {
	g.GET("/collections", func(c echo.Context) error {
		cols, err := cs.Collections(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cols)
	})

	g.GET("/collections/:id", func(c echo.Context) error {
		detail, err := cs.Collection(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "collection not found"})
		}
		return c.JSON(http.StatusOK, detail)
	})

	g.GET("/products", func(c echo.Context) error {
		products, err := cs.Products(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, products)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		product, err := cs.Product(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, product)
	})

	// Review submission needs an account; the page shows a login prompt on 401.
	review := g.Group("/products/:id/review")
	review.Use(middleware.JWTMiddleware())
	review.POST("", func(c echo.Context) error {
		rating, _ := strconv.Atoi(c.FormValue("rating"))
		upload := backend.ReviewUpload{
			Rating:  rating,
			Comment: c.FormValue("comment"),
		}

		if fh, err := c.FormFile("reviewImages"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable image"})
			}
			defer f.Close()
			upload.Image = f
			upload.ImageName = fh.Filename
		}

		err := cs.SubmitReview(
			c.Request().Context(),
			middleware.RawToken(c),
			c.Param("id"),
			upload,
		)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted"})
	})

	// Customization file upload; open to guests so the product page works
	// before login.
	g.POST("/upload/temp", func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
		}
		defer f.Close()

		res, err := cs.UploadCustomizationFile(c.Request().Context(), fh.Filename, f)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, res)
	})
}
