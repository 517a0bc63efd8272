package main

import (
	"net/http"

	"github.com/RanganathP76/ecommerce-frontend/internal/middleware"
	"github.com/RanganathP76/ecommerce-frontend/internal/services"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")

	auth.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		res, err := authSvc.Login(
			c.Request().Context(),
			middleware.SessionID(c),
			req.Email,
			req.Password,
		)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusOK, res)
	})

	auth.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		res, err := authSvc.Register(
			c.Request().Context(),
			middleware.SessionID(c),
			req.Name,
			req.Email,
			req.Password,
		)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, res)
	})

	auth.POST("/logout", func(c echo.Context) error {
		if err := authSvc.Logout(middleware.SessionID(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
	})

	// minimal account view from the token + mirrored snapshot
	protected := auth.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.GET("/me", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		user, err := authSvc.CurrentUser(middleware.SessionID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":    claims.UserID,
			"email": claims.Email,
			"user":  user,
		})
	})
}
