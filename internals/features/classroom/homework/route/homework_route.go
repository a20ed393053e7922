// file: internals/features/classroom/homework/route/homework_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classboard_backend/internals/features/classroom/homework/controller"
	"classboard_backend/internals/features/classroom/homework/repo"
)

func HomeworkRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	controller := ctl.New(repo.NewHomeworkRepo(db), v)

	g := api.Group("/hwork")
	g.Get("/", controller.List)
	g.Post("/", controller.Create)
	g.Get("/:id", controller.GetByID)
	g.Patch("/:id", controller.Patch)
	g.Delete("/:id", controller.Delete)
}
