package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Get("/:id/streak", handler.GetHabitStreak)

	api.Post("/completions/:id", handler.AuthRequired, handler.SetCompletion)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("", handler.GetMoods)
	moods.Post("", handler.LogMood)
	moods.Put("/today", handler.UpdateTodayMood)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/summary", handler.GetStatsSummary)
	stats.Get("/suggestion", handler.GetSuggestion)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.GetNotifications)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)

	api.Get("/calendar.ics", handler.AuthRequired, handler.ExportCalendar)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
