package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/testutil"
	"moto_portal/pkg/apperrors"
)

func TestSectionVisibility_GatesPublicLists(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	store := newTestAssets(newMemStorage())

	sections := NewSectionService(repositories.NewSectionRepository())
	news := NewNewsService(repositories.NewNewsRepository(), sections, store)
	regulations := NewRegulationService(repositories.NewRegulationRepository(), sections, store)
	employees := NewEmployeeService(repositories.NewEmployeeRepository(), sections, store)

	vis, err := sections.Visibility(ctx, db)
	require.NoError(t, err)
	assert.True(t, vis.News && vis.Regulations && vis.Employees)

	_, err = news.Create(ctx, db, &dto.CreateNewsRequest{Title: "Season opening", Content: "text", IsPublished: true})
	require.NoError(t, err)
	_, err = news.Create(ctx, db, &dto.CreateNewsRequest{Title: "Draft", Content: "text"})
	require.NoError(t, err)

	list, err := news.ListPublished(ctx, db, &dto.PublicationQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	vis, err = sections.SetVisibility(ctx, db, models.SectionNews, false)
	require.NoError(t, err)
	assert.False(t, vis.News)
	assert.True(t, vis.Employees)

	_, err = news.ListPublished(ctx, db, &dto.PublicationQuery{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSectionHidden))

	// админка видит раздел всегда
	all, err := news.List(ctx, db, &dto.PublicationQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = sections.SetVisibility(ctx, db, models.SectionRegulations, false)
	require.NoError(t, err)
	_, err = regulations.ListPublished(ctx, db, &dto.PublicationQuery{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSectionHidden))

	_, err = sections.SetVisibility(ctx, db, models.SectionEmployees, false)
	require.NoError(t, err)
	_, err = employees.ListActive(ctx, db, &dto.EmployeeQuery{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSectionHidden))

	_, err = sections.SetVisibility(ctx, db, models.SectionNews, true)
	require.NoError(t, err)
	_, err = news.ListPublished(ctx, db, &dto.PublicationQuery{})
	assert.NoError(t, err)
}

func TestNewsService_DeleteRemovesAttachments(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	st := newMemStorage()
	store := newTestAssets(st)
	news := NewNewsService(repositories.NewNewsRepository(), NewSectionService(repositories.NewSectionRepository()), store)

	item, err := news.Create(ctx, db, &dto.CreateNewsRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	photo, err := news.AddPhoto(ctx, db, item.ID, fileInput("p.jpg", "p"))
	require.NoError(t, err)
	doc, err := news.AddDocument(ctx, db, item.ID, fileInput("d.pdf", "d"))
	require.NoError(t, err)
	assert.Contains(t, doc.FilePath, "documents")

	_, err = news.AddDocument(ctx, db, item.ID, fileInput("d.exe", "d"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidExtension))

	require.NoError(t, news.Delete(ctx, db, item.ID))
	assert.Equal(t, 1, st.deletes[photo.FilePath])
	assert.Equal(t, 1, st.deletes[doc.FilePath])
	assert.Zero(t, st.count())
}

func TestEmployeeService_UploadPhotoReplacesFile(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	st := newMemStorage()
	svc := NewEmployeeService(repositories.NewEmployeeRepository(), NewSectionService(repositories.NewSectionRepository()), newTestAssets(st))

	emp, err := svc.Create(ctx, db, &dto.CreateEmployeeRequest{FirstName: "Ivan", LastName: "Petrov", Position: "Trainer"})
	require.NoError(t, err)

	first, err := svc.UploadPhoto(ctx, db, emp.ID, fileInput("a.jpg", "a"))
	require.NoError(t, err)
	require.NotNil(t, first.PhotoPath)
	oldPath := *first.PhotoPath

	second, err := svc.UploadPhoto(ctx, db, emp.ID, fileInput("b.jpg", "b"))
	require.NoError(t, err)
	assert.NotEqual(t, oldPath, *second.PhotoPath)
	assert.Equal(t, 1, st.deletes[oldPath])
	assert.Equal(t, 1, st.count())
}
