package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the PlatePix backend!"})
	}
}

func Hello() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
	}
}
