package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
)

// AuthMiddleware validates the JWT and loads the user with roles and
// branch grants into the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// Bearer header first, cookie fallback.
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := database.LoadUserContext(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user", user)
	c.Locals("user_id", user.ID)
	return c.Next()
}

// BranchMiddleware resolves the active branch for the request. The
// X-Branch-Id header selects among the user's granted academies; with
// no header the default branch applies. An ungranted id is a 403.
func BranchMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	branchID := c.Get("X-Branch-Id")
	if branchID == "" {
		if len(user.Academies) == 0 {
			return c.Status(403).JSON(fiber.Map{"error": "No branch access"})
		}
		branchID = user.Academies[0].ID
	} else if !user.HasAcademy(branchID) {
		return c.Status(403).JSON(fiber.Map{"error": "No access to this branch"})
	}

	c.Locals("academy_id", branchID)
	return c.Next()
}

// RequirePermission gates a route on a permission key from the
// role/permission matrix. Admins pass every check.
func RequirePermission(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		if !user.HasPermission(key) {
			return c.Status(403).JSON(fiber.Map{"error": "Permission denied"})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user from the context.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// AcademyID returns the active branch id resolved by BranchMiddleware.
func AcademyID(c *fiber.Ctx) string {
	id, _ := c.Locals("academy_id").(string)
	return id
}
