package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
	"tidylist/internal/services"
)

// eventRecorder captures published domain events for assertions.
type eventRecorder struct {
	events []recordedEvent
}

type recordedEvent struct {
	Type   string
	Fields map[string]string
}

func (r *eventRecorder) PublishEvent(eventType string, fields map[string]string) error {
	r.events = append(r.events, recordedEvent{Type: eventType, Fields: fields})
	return nil
}

func newCategoryService() (*services.CategoryService, *repositories.MockCategoryRepository, *repositories.MockTaskRepository, *eventRecorder) {
	categoryRepo := repositories.NewMockCategoryRepository()
	taskRepo := repositories.NewMockTaskRepository()
	recorder := &eventRecorder{}
	return services.NewCategoryService(categoryRepo, taskRepo, recorder), categoryRepo, taskRepo, recorder
}

func TestCategoryService_Create(t *testing.T) {
	service, _, _, _ := newCategoryService()

	category, err := service.Create(services.CreateCategoryInput{Name: "Work", UserID: "user-a"})
	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "user-a", category.UserID)

	// Same name for the same user conflicts.
	_, err = service.Create(services.CreateCategoryInput{Name: "Work", UserID: "user-a"})
	assertKind(t, err, apperrors.KindConflict)

	// Uniqueness is per-user, not global.
	other, err := service.Create(services.CreateCategoryInput{Name: "Work", UserID: "user-b"})
	assert.NoError(t, err)
	assert.NotEqual(t, category.ID, other.ID)
}

func TestCategoryService_FindOne(t *testing.T) {
	service, _, _, _ := newCategoryService()

	created, err := service.Create(services.CreateCategoryInput{Name: "Home", UserID: "user-a"})
	assert.NoError(t, err)

	found, err := service.FindOne("user-a", created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Unknown id
	_, err = service.FindOne("user-a", "missing")
	assertKind(t, err, apperrors.KindNotFound)

	// Another user's category is indistinguishable from a missing one.
	_, err = service.FindOne("user-b", created.ID)
	assertKind(t, err, apperrors.KindNotFound)
}

func TestCategoryService_FindAll(t *testing.T) {
	service, _, _, _ := newCategoryService()

	_, err := service.Create(services.CreateCategoryInput{Name: "Home", UserID: "user-a"})
	assert.NoError(t, err)
	_, err = service.Create(services.CreateCategoryInput{Name: "Work", UserID: "user-a"})
	assert.NoError(t, err)
	_, err = service.Create(services.CreateCategoryInput{Name: "Errands", UserID: "user-b"})
	assert.NoError(t, err)

	categories, err := service.FindAll("user-a")
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_Update(t *testing.T) {
	service, _, _, _ := newCategoryService()

	created, err := service.Create(services.CreateCategoryInput{Name: "Home", UserID: "user-a"})
	assert.NoError(t, err)

	newName := "House"
	updated, err := service.Update(services.UpdateCategoryInput{ID: created.ID, UserID: "user-a", Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "House", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	// A nil patch leaves the record as is.
	unchanged, err := service.Update(services.UpdateCategoryInput{ID: created.ID, UserID: "user-a"})
	assert.NoError(t, err)
	assert.Equal(t, "House", unchanged.Name)

	_, err = service.Update(services.UpdateCategoryInput{ID: "missing", UserID: "user-a", Name: &newName})
	assertKind(t, err, apperrors.KindNotFound)
}

func TestCategoryService_RemoveCascadesTasks(t *testing.T) {
	service, _, taskRepo, recorder := newCategoryService()

	category, err := service.Create(services.CreateCategoryInput{Name: "Home", UserID: "user-a"})
	assert.NoError(t, err)

	for _, name := range []string{"sweep", "mop"} {
		err := taskRepo.Create(&models.Task{Name: name, UserID: "user-a", CategoryID: category.ID})
		assert.NoError(t, err)
	}
	// A task of another user in an unrelated category must survive.
	err = taskRepo.Create(&models.Task{Name: "sweep", UserID: "user-b", CategoryID: "other-cat"})
	assert.NoError(t, err)

	removed, err := service.Remove("user-a", category.ID)
	assert.NoError(t, err)
	assert.Equal(t, category.ID, removed.ID)

	leftover, err := taskRepo.GetByCategory("user-a", category.ID)
	assert.NoError(t, err)
	assert.Empty(t, leftover)

	survivors, err := taskRepo.GetAll("user-b")
	assert.NoError(t, err)
	assert.Len(t, survivors, 1)

	_, err = service.FindOne("user-a", category.ID)
	assertKind(t, err, apperrors.KindNotFound)

	// The deletion is announced with the cascade count.
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "category.deleted", recorder.events[0].Type)
	assert.Equal(t, "2", recorder.events[0].Fields["removedTasks"])

	// Removing again reports not-found.
	_, err = service.Remove("user-a", category.ID)
	assertKind(t, err, apperrors.KindNotFound)
}
