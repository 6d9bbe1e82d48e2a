package middleware

import (
	config "github.com/alphadev-tn/stage_manager/configs"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// Protected gates a route behind a bearer access token. Every mutating verb
// on every resource goes through it; reads and the login family do not.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("ACCESS_TOKEN_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return utils.JsonError(c, fiber.StatusUnauthorized, "Access token is required", nil)
	}
	return utils.JsonError(c, fiber.StatusForbidden, "Invalid access token", err)
}
