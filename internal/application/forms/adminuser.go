package forms

import (
	"context"

	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewAdminUserModule módulo de usuarios internos, visible solo para admins.
// Formulario de un paso; los permisos se editan después desde el listado.
func NewAdminUserModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.User], error) {
	return newModule(api, entity.CategoryAdmin, "users", AdminUserSteps(), func() entity.User {
		return entity.User{}
	}, mutNone, opts, log)
}

// AdminUserSteps paso único del alta de usuario.
func AdminUserSteps() []wizard.Step[entity.User] {
	return []wizard.Step[entity.User]{
		{Name: "User Details", Validate: validateAdminUser},
	}
}

func validateAdminUser(u entity.User) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "name", u.Name, "Name is required")
	validate.RequiredPhone(errs, "phoneNumber", u.PhoneNumber, "Valid Phone Number is required")
	validate.RequiredEmail(errs, "email", u.Email, "Valid Email is required")
	validate.Required(errs, "department", u.Department, "Department is required")
	validate.Required(errs, "designation", u.Designation, "Designation is required")
	validate.Required(errs, "password", u.Password, "Password is required")
	validate.Required(errs, "confirmPassword", u.ConfirmPassword, "Confirm Password is required")
	validate.PasswordsMatch(errs, "confirmPassword", u.Password, u.ConfirmPassword)
	return errs
}

// UpdateUserPermissions guarda la matriz de permisos de un usuario. Se llama
// desde el listado de admins tras alternar los checks de editor/viewer.
func UpdateUserPermissions(ctx context.Context, api *rest.Client, id string, m entity.PermissionMatrix) error {
	payload := map[string]entity.PermissionMatrix{"permissions": m}
	return api.Update(ctx, "users", id, payload, nil)
}
