package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	config "github.com/madiharazzak/WEIC-Time-Tracking/configs"
	"github.com/madiharazzak/WEIC-Time-Tracking/store"
)

// UploadTeacherPhoto stores a profile photo for a teacher on Cloudinary and
// saves the resulting URL.
func (h *Handler) UploadTeacherPhoto(c *fiber.Ctx) error {
	teacherID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	if _, err := h.Store.GetTeacher(c.Context(), teacherID); err != nil {
		return storeError(c, err, "Failed to load teacher")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A photo file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read uploaded file"})
	}
	defer file.Close()

	cldURL := config.Config("CLOUDINARY_URL")
	if cldURL == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Photo uploads are not configured"})
	}
	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		log.Printf("🔥 Failed to initialize Cloudinary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: fmt.Sprintf("teachers/%s", teacherID),
		Folder:   "weic_teacher_photos",
	})
	if err != nil {
		log.Printf("🔥 Failed to upload teacher photo: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
	}

	teacher, err := h.Store.UpdateTeacher(c.Context(), teacherID, store.TeacherUpdate{PhotoURL: &result.SecureURL})
	if err != nil {
		return storeError(c, err, "Failed to save photo URL")
	}

	log.Printf("✅ Photo uploaded for teacher %s", teacher.Name)
	return c.JSON(teacher)
}
