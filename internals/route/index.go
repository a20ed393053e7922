// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dutyRoute "classboard_backend/internals/features/classroom/duty/route"
	hworkRoute "classboard_backend/internals/features/classroom/homework/route"
	ttRoute "classboard_backend/internals/features/classroom/timetable/route"
)

// SetupRoutes mounts the three classroom feature groups under /api.
// Everything is open: the app runs inside one class, no auth anywhere.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()
	api := app.Group("/api")

	log.Println("[INFO] Setting up TimetableRoutes...")
	ttRoute.TimetableRoutes(api, db, v)

	log.Println("[INFO] Setting up HomeworkRoutes...")
	hworkRoute.HomeworkRoutes(api, db, v)

	log.Println("[INFO] Setting up DutyRoutes...")
	dutyRoute.DutyRoutes(api, db, v)
}
