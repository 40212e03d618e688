package utils

import "github.com/gin-gonic/gin"

// Accessors for the identity the auth middlewares store on the request
// context. Each returns the zero value when the middleware did not run.

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("userId")
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString("username")
}

func CurrentRole(c *gin.Context) string {
	return c.GetString("role")
}
