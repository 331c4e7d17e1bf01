package handlers

import (
	"strconv"

	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetPackages lists active catalog packages, optionally filtered by event type
func GetPackages(packages repository.PackageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventType := c.Query("event_type")
		if eventType != "" {
			eventType = services.NormalizeEventType(eventType)
		}

		result, err := packages.FindActive(c.Request.Context(), eventType)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch packages"})
			return
		}

		c.JSON(200, gin.H{"packages": result})
	}
}

// GetPackageByID returns a single catalog package
func GetPackageByID(packages repository.PackageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid package ID"})
			return
		}

		pkg, err := packages.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.JSON(404, gin.H{"error": "Package not found"})
			return
		}

		c.JSON(200, pkg)
	}
}

type PackageInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	EventType   string  `json:"eventType" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreatePackage adds a catalog entry owned by the calling organizer
func CreatePackage(packages repository.PackageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		organizerID := c.GetUint("organizerId")

		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		status := models.PackageStatus(input.Status)
		if status == "" {
			status = models.PackageStatusActive
		}

		pkg := models.Package{
			OrganizerID: organizerID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			EventType:   services.NormalizeEventType(input.EventType),
			Status:      status,
			ImageURL:    input.ImageURL,
		}

		if err := packages.Create(c.Request.Context(), &pkg); err != nil {
			c.JSON(500, gin.H{"error": "Failed to create package"})
			return
		}

		c.JSON(201, pkg)
	}
}

// UpdatePackage edits a catalog entry; organizers can only touch their own
func UpdatePackage(packages repository.PackageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		organizerID := c.GetUint("organizerId")
		role := c.GetString("role")

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid package ID"})
			return
		}

		pkg, err := packages.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.JSON(404, gin.H{"error": "Package not found"})
			return
		}

		if role != string(models.RoleAdmin) && pkg.OrganizerID != organizerID {
			c.JSON(403, gin.H{"error": "You can only update your own packages"})
			return
		}

		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		pkg.Name = input.Name
		pkg.Description = input.Description
		pkg.Price = input.Price
		pkg.EventType = services.NormalizeEventType(input.EventType)
		pkg.ImageURL = input.ImageURL
		if input.Status != "" {
			pkg.Status = models.PackageStatus(input.Status)
		}

		if err := packages.Update(c.Request.Context(), pkg); err != nil {
			c.JSON(500, gin.H{"error": "Failed to update package"})
			return
		}

		c.JSON(200, pkg)
	}
}

type ReviewInput struct {
	PackageID uint    `json:"packageId" binding:"required"`
	Rating    float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string  `json:"comment"`
}

// SubmitReview records a rating and refreshes the package's average
func SubmitReview(packages repository.PackageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := packages.FindByID(c.Request.Context(), input.PackageID); err != nil {
			c.JSON(404, gin.H{"error": "Package not found"})
			return
		}

		review := models.Review{
			PackageID: input.PackageID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		if err := packages.AddReview(c.Request.Context(), &review); err != nil {
			c.JSON(500, gin.H{"error": "Failed to submit review"})
			return
		}

		c.JSON(201, gin.H{"message": "Review submitted successfully", "review": review})
	}
}
