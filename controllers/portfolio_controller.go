package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PortfolioItem struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

var portfolio = []PortfolioItem{
	{Title: "Gourmet Burger", Image: "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=1600&auto=format&fit=crop"},
	{Title: "Sushi Platter", Image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=1600&auto=format&fit=crop"},
	{Title: "Pasta Bowl", Image: "https://images.unsplash.com/photo-1526312426976-593c2d0b-14c6?q=80&w=1600&auto=format&fit=crop"},
	{Title: "Indian Thali", Image: "https://images.unsplash.com/photo-1625944524791-8dd43259c59e?q=80&w=1600&auto=format&fit=crop"},
	{Title: "Dessert Spread", Image: "https://images.unsplash.com/photo-1511920170033-f8396924c348?q=80&w=1600&auto=format&fit=crop"},
	{Title: "Mocktails", Image: "https://images.unsplash.com/photo-1551024709-8f23befc6cf7?q=80&w=1600&auto=format&fit=crop"},
}

// Portfolio serves the static gallery shown on the landing page.
func Portfolio() gin.HandlerFunc {
	return func(c *gin.Context) {
		items := make([]PortfolioItem, len(portfolio))
		copy(items, portfolio)
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
