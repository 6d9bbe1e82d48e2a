package utils

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope: {success, message, data}
// on the happy path, {success, message, error} otherwise.

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonError(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
