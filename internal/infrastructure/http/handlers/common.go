// Package handlers provides the HTTP API handlers
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/pkg/errors"
)

const dateLayout = "2006-01-02"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("mealslot", func(fl validator.FieldLevel) bool {
			_, err := mealplan.ParseSlot(fl.Field().String())
			return err == nil
		})
	}
}

// pathUUID parses a UUID path parameter, writing a validation error on
// failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		middleware.RespondErrorf(c, "invalid %s", name)
		return uuid.Nil, false
	}
	return id, true
}

// queryDate parses the "date" query parameter, defaulting to today
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		middleware.RespondError(c, errors.NewValidationError("date must be formatted YYYY-MM-DD"))
		return time.Time{}, false
	}
	return date, true
}

func ok(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}
