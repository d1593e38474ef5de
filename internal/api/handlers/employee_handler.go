package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
)

type EmployeeHandler struct {
	engine *engine.Engine
}

func NewEmployeeHandler(eng *engine.Engine) *EmployeeHandler {
	return &EmployeeHandler{engine: eng}
}

func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	return c.JSON(h.engine.Employees())
}

// SearchEmployees applies the structured filters from query parameters, in
// contrast to the free-text /chat path.
func (h *EmployeeHandler) SearchEmployees(c *fiber.Ctx) error {
	filters := employee.Filters{
		MinExperience: c.QueryInt("min_experience"),
		MaxExperience: c.QueryInt("max_experience"),
		Department:    c.Query("department"),
		MaxResults:    c.QueryInt("max_results", 10),
	}

	if skills := c.Query("skills"); skills != "" {
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filters.Skills = append(filters.Skills, s)
			}
		}
	}

	if availability := c.Query("availability"); availability != "" {
		switch employee.Availability(availability) {
		case employee.Available, employee.Busy, employee.OnLeave:
			filters.Availability = employee.Availability(availability)
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "availability must be one of: available, busy, on_leave",
			})
		}
	}

	return c.JSON(employee.ApplyFilters(h.engine.Employees(), filters))
}

func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Employee id must be an integer",
		})
	}

	for _, emp := range h.engine.Employees() {
		if emp.ID == id {
			return c.JSON(emp)
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Employee not found",
	})
}

func (h *EmployeeHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(employee.ComputeStats(h.engine.Employees()))
}
