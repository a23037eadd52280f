package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/easylearn/easylearn/internal/storage"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// LibraryService serves the e-book library and course resources, including
// the admin upload paths backed by the blob store.
type LibraryService interface {
	GetBooks(programID uint, search string) ([]dto.BookResponse, error)
	GetAllBooks() ([]dto.BookResponse, error)
	UploadBook(form dto.UploadBookForm, pdf io.Reader, pdfName string, cover io.Reader, coverName string) (*dto.BookResponse, error)
	DeleteBook(id uint) error

	GetCourses(programID uint) ([]dto.CourseResponse, error)
	GetResources(programID uint, courseID uint, resourceType string) ([]dto.ResourceResponse, error)
	UploadResource(form dto.UploadResourceForm, file io.Reader, fileName string) (*dto.ResourceResponse, error)
	DeleteResource(id uint) error
}

type libraryService struct {
	bookRepo     repository.BookRepository
	resourceRepo repository.ResourceRepository
	courseRepo   repository.CourseRepository
	blobs        storage.BlobStore
}

func NewLibraryService(
	bookRepo repository.BookRepository,
	resourceRepo repository.ResourceRepository,
	courseRepo repository.CourseRepository,
	blobs storage.BlobStore,
) LibraryService {
	return &libraryService{
		bookRepo:     bookRepo,
		resourceRepo: resourceRepo,
		courseRepo:   courseRepo,
		blobs:        blobs,
	}
}

func (s *libraryService) GetBooks(programID uint, search string) ([]dto.BookResponse, error) {
	books, err := s.bookRepo.FindByProgramID(programID)
	if err != nil {
		log.Error().Err(err).Uint("programID", programID).Msg("Failed to fetch books")
		return nil, fmt.Errorf("error fetching books: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	dtos := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) {
			continue
		}
		var resp dto.BookResponse
		if err := copier.Copy(&resp, &b); err != nil {
			log.Error().Err(err).Uint("bookID", b.ID).Msg("Failed to copy book to DTO")
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *libraryService) GetAllBooks() ([]dto.BookResponse, error) {
	books, err := s.bookRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching books: %w", err)
	}
	dtos := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		var resp dto.BookResponse
		if err := copier.Copy(&resp, &b); err != nil {
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *libraryService) UploadBook(form dto.UploadBookForm, pdf io.Reader, pdfName string, cover io.Reader, coverName string) (*dto.BookResponse, error) {
	pdfKey := blobKey("books/pdfs", pdfName)
	if _, err := s.blobs.Put(pdfKey, pdf); err != nil {
		log.Error().Err(err).Str("key", pdfKey).Msg("Failed to store book PDF")
		return nil, fmt.Errorf("storing book file: %w", err)
	}

	book := model.Book{
		ProgramID:   form.ProgramID,
		Title:       form.Title,
		Author:      form.Author,
		Description: form.Description,
		FileURL:     s.blobs.PublicURL(pdfKey),
	}

	if cover != nil {
		coverKey := blobKey("books/covers", coverName)
		if _, err := s.blobs.Put(coverKey, cover); err != nil {
			// The book is still usable without a cover image.
			log.Warn().Err(err).Str("key", coverKey).Msg("Failed to store cover image, continuing without it")
		} else {
			url := s.blobs.PublicURL(coverKey)
			book.CoverImageURL = &url
		}
	}

	if err := s.bookRepo.Create(&book); err != nil {
		log.Error().Err(err).Str("title", form.Title).Msg("Failed to create book record")
		return nil, fmt.Errorf("creating book: %w", err)
	}

	var resp dto.BookResponse
	if err := copier.Copy(&resp, &book); err != nil {
		return nil, fmt.Errorf("error preparing book response: %w", err)
	}
	return &resp, nil
}

func (s *libraryService) DeleteBook(id uint) error {
	return s.bookRepo.Delete(id)
}

func (s *libraryService) GetCourses(programID uint) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindByProgramID(programID)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	dtos := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		var resp dto.CourseResponse
		if err := copier.Copy(&resp, &c); err != nil {
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *libraryService) GetResources(programID uint, courseID uint, resourceType string) ([]dto.ResourceResponse, error) {
	var courseIDs []uint
	if courseID != 0 {
		courseIDs = []uint{courseID}
	} else {
		ids, err := s.courseRepo.FindIDsByProgramID(programID)
		if err != nil {
			return nil, fmt.Errorf("error fetching courses: %w", err)
		}
		courseIDs = ids
	}

	resources, err := s.resourceRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch resources")
		return nil, fmt.Errorf("error fetching resources: %w", err)
	}

	dtos := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		if resourceType != "" && r.Type != resourceType {
			continue
		}
		dtos = append(dtos, resourceResponse(&r))
	}
	return dtos, nil
}

func (s *libraryService) UploadResource(form dto.UploadResourceForm, file io.Reader, fileName string) (*dto.ResourceResponse, error) {
	if _, err := s.courseRepo.FindByID(form.CourseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", form.CourseID, err)
	}

	key := blobKey("resources", fileName)
	if _, err := s.blobs.Put(key, file); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to store resource file")
		return nil, fmt.Errorf("storing resource file: %w", err)
	}

	resource := model.Resource{
		CourseID: form.CourseID,
		Title:    form.Title,
		Type:     form.Type,
		FileURL:  s.blobs.PublicURL(key),
	}
	if err := s.resourceRepo.Create(&resource); err != nil {
		log.Error().Err(err).Str("title", form.Title).Msg("Failed to create resource record")
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	resp := resourceResponse(&resource)
	return &resp, nil
}

func (s *libraryService) DeleteResource(id uint) error {
	return s.resourceRepo.Delete(id)
}

func resourceResponse(r *model.Resource) dto.ResourceResponse {
	var resp dto.ResourceResponse
	if err := copier.Copy(&resp, r); err != nil {
		log.Error().Err(err).Uint("resourceID", r.ID).Msg("Failed to copy resource to DTO")
	}
	resp.CourseCode = r.Course.Code
	resp.CourseName = r.Course.Name
	return resp
}

// blobKey prefixes the original file name with a uuid so repeated uploads of
// the same name never collide.
func blobKey(dir, fileName string) string {
	base := filepath.Base(fileName)
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s/%s_%s", dir, uuid.NewString(), base)
}
