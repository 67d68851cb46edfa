package staff

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/validation"
)

func GetStaffAPI(c *fiber.Ctx) error {
	staff, err := database.GetAllStaff(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}

	// Attach roles so the permission matrix renders in one round trip.
	for _, u := range staff {
		if roles, err := database.GetUserRoles(config.GetDB(), u.ID); err == nil {
			u.Roles = roles
		}
	}

	return c.JSON(fiber.Map{"staff": staff, "count": len(staff)})
}

func GetRolesAPI(c *fiber.Ctx) error {
	roles, err := database.GetAllRoles(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}

	return c.JSON(fiber.Map{"roles": roles})
}

func CreateStaffAPI(c *fiber.Ctx) error {
	type CreateStaffRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
		Phone    string `json:"phone"`
	}

	var req CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{Email: req.Email, Password: hashed, Name: req.Name, Phone: req.Phone}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff account"})
	}

	return c.Status(201).JSON(fiber.Map{"user": user})
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(user); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	user.ID = c.Params("id")
	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff member"})
	}

	return c.JSON(fiber.Map{"user": user})
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	if c.Params("id") == auth.CurrentUser(c).ID {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	if err := database.DeleteUser(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete staff member"})
	}

	return c.JSON(fiber.Map{"message": "Staff member deleted"})
}

func SetStaffRolesAPI(c *fiber.Ctx) error {
	type RolesRequest struct {
		RoleIDs []string `json:"role_ids" validate:"required,dive,uuid"`
	}

	var req RolesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.SetUserRoles(config.GetDB(), c.Params("id"), req.RoleIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update roles"})
	}

	return c.JSON(fiber.Map{"message": "Roles updated"})
}

func SetStaffBranchesAPI(c *fiber.Ctx) error {
	type BranchesRequest struct {
		AcademyIDs []string `json:"academy_ids" validate:"required,min=1,dive,uuid"`
	}

	var req BranchesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.SetUserAcademies(config.GetDB(), c.Params("id"), req.AcademyIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update branch access"})
	}

	return c.JSON(fiber.Map{"message": "Branch access updated"})
}

// UpdateRolePermissionsAPI rewrites one role's permission keys from
// the console's permission matrix editor.
func UpdateRolePermissionsAPI(c *fiber.Ctx) error {
	type PermissionsRequest struct {
		Permissions []string `json:"permissions" validate:"required"`
	}

	var req PermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if fields := validation.Struct(req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpdateRolePermissions(config.GetDB(), c.Params("roleId"), req.Permissions); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update permissions"})
	}

	return c.JSON(fiber.Map{"message": "Permissions updated"})
}
