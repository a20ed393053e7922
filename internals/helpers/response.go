package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON wire helpers

   The API speaks the same wire shapes as the old Next.js routes:
   failures are {"error": "<message>"}, deletes answer {"ok": true}.
=================================*/

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func JsonDeleted(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
