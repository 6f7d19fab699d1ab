package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Courts are shared reference data that changes only on administrative
// edits, so list pages are served through a short-lived cache.
const (
	courtCacheTTL     = 10 * time.Minute
	courtCacheCleanup = 20 * time.Minute
)

var courtCache = gocache.New(courtCacheTTL, courtCacheCleanup)

// CourtFilters are the optional constraints for ListCourts.
type CourtFilters struct {
	CourtType string
	State     string
	Search    string
}

// CourtInput carries the fields for administrative court edits.
type CourtInput struct {
	Name        string `json:"name"`
	CourtType   string `json:"court_type"`
	Location    string `json:"location"`
	State       string `json:"state"`
	Address     string `json:"address"`
	ContactInfo string `json:"contact_info"`
}

type courtPage struct {
	Courts     []models.Court
	Pagination Pagination
}

func courtCacheKey(filters CourtFilters, page int) string {
	return fmt.Sprintf("courts:%s:%s:%s:%d", filters.CourtType, filters.State, filters.Search, page)
}

// ListCourts returns one page of the court directory ordered by type
// then name. Results are cached per filter combination; the cache is
// flushed whenever a court is created or edited.
func ListCourts(db *gorm.DB, filters CourtFilters, page int) ([]models.Court, Pagination, error) {
	key := courtCacheKey(filters, page)
	if cached, found := courtCache.Get(key); found {
		if result, ok := cached.(courtPage); ok {
			return result.Courts, result.Pagination, nil
		}
	}

	query := db.Model(&models.Court{})
	if filters.CourtType != "" && models.IsValidCourtType(filters.CourtType) {
		query = query.Where("court_type = ?", filters.CourtType)
	}
	if filters.State != "" {
		query = query.Where("state LIKE ?", "%"+filters.State+"%")
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			db.Where("name LIKE ?", pattern).Or("location LIKE ?", pattern),
		)
	}

	query, pagination, err := paginate(query, &models.Court{}, page)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count courts: %w", err)
	}

	var courts []models.Court
	if err := query.Order("court_type ASC").Order("name ASC").Find(&courts).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to fetch courts: %w", err)
	}

	courtCache.Set(key, courtPage{Courts: courts, Pagination: pagination}, gocache.DefaultExpiration)
	return courts, pagination, nil
}

// GetCourt returns a court by id. Courts have no owner, so no scoping
// applies.
func GetCourt(db *gorm.DB, courtID string) (*models.Court, error) {
	var court models.Court
	if err := db.First(&court, "id = ?", courtID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	return &court, nil
}

// CreateCourt adds a court to the shared directory (administrative use).
func CreateCourt(db *gorm.DB, input CourtInput) (*models.Court, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "court name is required")
	}
	if !models.IsValidCourtType(input.CourtType) {
		return nil, NewValidationError("court_type", "invalid court type")
	}
	if input.Location == "" {
		return nil, NewValidationError("location", "court location is required")
	}
	if input.State == "" {
		return nil, NewValidationError("state", "court state is required")
	}

	court := &models.Court{
		Name:        input.Name,
		CourtType:   input.CourtType,
		Location:    input.Location,
		State:       input.State,
		Address:     input.Address,
		ContactInfo: input.ContactInfo,
	}
	if err := db.Create(court).Error; err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}

	courtCache.Flush()
	return court, nil
}

// FlushCourtCache drops all cached court pages. Exposed for the seeder
// and tests.
func FlushCourtCache() {
	courtCache.Flush()
}
