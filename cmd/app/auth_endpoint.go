package main

import (
	"errors"
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

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

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		sess, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			var fieldErrs services.FieldErrors
			if errors.As(err, &fieldErrs) {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"errors": fieldErrs,
				})
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"session_id": sess.ID,
			"user": echo.Map{
				"id":    sess.UserID,
				"name":  sess.UserName,
				"email": sess.UserEmail,
			},
		})
	}
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		// no session is created here; the user signs in separately
		message, err := authSvc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
		if err != nil {
			var fieldErrs services.FieldErrors
			if errors.As(err, &fieldErrs) {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"errors": fieldErrs,
				})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"message": message,
		})
	}
}

// logoutHandler is public on purpose: signing out with no active session is
// fine and must not 401.
func logoutHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := middleware.BearerCredential(c)
		if err := authSvc.Logout(c.Request().Context(), id); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "could not end session",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": "signed out",
		})
	}
}

// meHandler returns the signed-in identity from the cached session fields,
// plus display-only claims from the backend token.
func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.GetSession(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		resp := echo.Map{
			"id":    sess.UserID,
			"name":  sess.UserName,
			"email": sess.UserEmail,
		}
		if claims := middleware.TokenClaims(sess.Token); claims != nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				resp["token_expires_at"] = exp.Time
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, protect echo.MiddlewareFunc) {
	auth := g.Group("/auth")

	// public
	auth.POST("/login", loginHandler(authSvc))
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/logout", logoutHandler(authSvc))

	// authenticated
	protected := auth.Group("")
	protected.Use(protect)
	protected.GET("/me", meHandler())
}
