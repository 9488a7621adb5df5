package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"stockyard/internal/core/workflow"
	"stockyard/internal/domain/billing"
)

// Custom binding validators for domain enums. Registered once at package
// init so DTO tags can use them directly.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("chargetype", func(fl validator.FieldLevel) bool {
		return billing.ChargeType(fl.Field().String()).Valid()
	})

	_ = v.RegisterValidation("docstatus", func(fl validator.FieldLevel) bool {
		return workflow.Status(fl.Field().String()).Valid()
	})
}
