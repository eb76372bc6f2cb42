package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/polleria/polleria-api/initializers"
	"github.com/polleria/polleria-api/models"
	"gorm.io/gorm"
)

// validateProductInput trims the admin-submitted fields and enforces the
// catalog rules: a product needs a name, a category and a positive price.
// Description may be empty and the category set is open.
func validateProductInput(input models.ProductInput) (models.ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, invalidRequest("product name is required")
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return input, invalidRequest("product category is required")
	}

	if !input.Price.IsPositive() {
		return input, invalidRequest("product price must be greater than zero")
	}
	input.Price = input.Price.Round(2)

	input.Description = strings.TrimSpace(input.Description)
	return input, nil
}

// GetProducts lists the catalog ascending by id. Serves both the public
// storefront and the admin panel.
func GetProducts(ctx *gin.Context) {
	var products []models.Product
	result := initializers.DB.Order("id asc").Find(&products)
	if result.Error != nil {
		log.Println("Failed to fetch products:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := validateProductInput(input)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	}
	if err := initializers.DB.Create(&product).Error; err != nil {
		log.Println("Failed to create product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create product")
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err = validateProductInput(input)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to fetch product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch product")
		}
		return
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	if err := initializers.DB.Save(&product).Error; err != nil {
		log.Println("Failed to update product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update product")
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Existing orders keep
// their snapshots, so sales history is unaffected.
func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		log.Println("Failed to delete product:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage stores a product photo in S3 and saves its URL on the
// product row.
func UploadProductImage(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to fetch product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch product")
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	uploader, err := getAWSUploader()
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	bucket := os.Getenv("AWS_S3_BUCKET")
	if bucket == "" {
		bucket = "polleria-products"
	}

	// Unique key so re-uploads never overwrite each other.
	key := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

	uploadResult, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := initializers.DB.Model(&product).Update("image_url", uploadResult.Location).Error; err != nil {
		log.Println("Failed to save image URL:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save image URL")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"imageUrl": uploadResult.Location})
}
