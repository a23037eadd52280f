package admin

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LibraryController handles admin uploads of books and course resources.
type LibraryController struct {
	libraryService service.LibraryService
}

func NewLibraryController(libraryService service.LibraryService) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// UploadBook godoc
// @Summary Upload an e-book (PDF plus optional cover image)
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param program_id formData int true "Program ID"
// @Param title formData string true "Book title"
// @Param author formData string false "Author"
// @Param description formData string false "Description"
// @Param pdf formData file true "PDF file"
// @Param cover formData file false "Cover image"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/books [post]
func (ctrl *LibraryController) UploadBook(c *gin.Context) {
	var form dto.UploadBookForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pdfHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A PDF file is required"})
		return
	}
	pdf, err := pdfHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read the PDF file"})
		return
	}
	defer pdf.Close()

	var (
		cover     multipart.File
		coverName string
	)
	if coverHeader, err := c.FormFile("cover"); err == nil {
		if cover, err = coverHeader.Open(); err == nil {
			coverName = coverHeader.Filename
			defer cover.Close()
		}
	}

	book, err := ctrl.libraryService.UploadBook(form, pdf, pdfHeader.Filename, cover, coverName)
	if err != nil {
		log.Error().Err(err).Str("title", form.Title).Msg("Failed to upload book")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to upload book"})
		return
	}
	c.JSON(http.StatusCreated, book)
}

// ListAllBooks godoc
// @Summary List books of every program
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BookResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/books [get]
func (ctrl *LibraryController) ListAllBooks(c *gin.Context) {
	books, err := ctrl.libraryService.GetAllBooks()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list books")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// DeleteBook godoc
// @Summary Delete a book
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param book_id path int true "Book ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid book ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/books/{book_id} [delete]
func (ctrl *LibraryController) DeleteBook(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("book_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID format"})
		return
	}

	if err := ctrl.libraryService.DeleteBook(uint(bookID)); err != nil {
		log.Error().Err(err).Uint64("bookID", bookID).Msg("Failed to delete book")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete book"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadResource godoc
// @Summary Upload a course resource file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param course_id formData int true "Course ID"
// @Param title formData string true "Resource title"
// @Param type formData string true "lecture_note, slides, past_question or assignment"
// @Param file formData file true "Resource file"
// @Success 201 {object} dto.ResourceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form or unknown course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/resources [post]
func (ctrl *LibraryController) UploadResource(c *gin.Context) {
	var form dto.UploadResourceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A resource file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read the resource file"})
		return
	}
	defer file.Close()

	resource, err := ctrl.libraryService.UploadResource(form, file, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("title", form.Title).Msg("Failed to upload resource")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// DeleteResource godoc
// @Summary Delete a course resource
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param resource_id path int true "Resource ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/resources/{resource_id} [delete]
func (ctrl *LibraryController) DeleteResource(c *gin.Context) {
	resourceID, err := strconv.ParseUint(c.Param("resource_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid resource ID format"})
		return
	}

	if err := ctrl.libraryService.DeleteResource(uint(resourceID)); err != nil {
		log.Error().Err(err).Uint64("resourceID", resourceID).Msg("Failed to delete resource")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete resource"})
		return
	}
	c.Status(http.StatusNoContent)
}
