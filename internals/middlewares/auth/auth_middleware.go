// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"colegio_backend/internals/configs"
	helper "colegio_backend/internals/helpers"
)

// AuthMiddleware valida el access token y copia los claims a Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token no provisto")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}

		if err := validateExpiry(claims); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expirado")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("claim exp ausente")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return fmt.Errorf("token expirado")
	}
	return nil
}

// storeClaimsToLocals: user_id, user_name, roles y cursos a cargo (preceptor).
// Los IDs viajan como string dentro del token; acá se normalizan a int64.
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		if id, err := helper.ParseID(sub); err == nil {
			c.Locals(helper.LocUserID, id)
		}
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals(helper.LocUserName, name)
	}
	if raw, ok := claims["roles"].([]interface{}); ok {
		roles := make([]string, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		c.Locals(helper.LocRoles, roles)
	}
	if raw, ok := claims["cursos_a_cargo"].([]interface{}); ok {
		cursos := make([]int64, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				if id, err := helper.ParseID(s); err == nil {
					cursos = append(cursos, id)
				}
			}
		}
		c.Locals(helper.LocCursosACargo, cursos)
	}
}
