package handlers

import (
	"lawyer_diary_go/db"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateTaskHandler creates a task reminder for the lawyer
func CreateTaskHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	cfg := getConfig(c)

	var input services.TaskInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	task, err := services.CreateTask(db.DB, cfg.Location(), user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": task})
}

// ListTasksHandler returns one page of the lawyer's tasks
func ListTasksHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	filters := services.TaskFilters{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		CaseID:   c.QueryParam("case_id"),
	}

	tasks, pagination, err := services.ListTasks(db.DB, user.ID, filters, pageParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, tasks, pagination)
}

// GetTaskHandler returns a single task owned by the lawyer
func GetTaskHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	task, err := services.GetTask(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": task})
}

// CompleteTaskHandler marks a task as completed
func CompleteTaskHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	task, err := services.MarkTaskCompleted(db.DB, user.ID, c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": task})
}
