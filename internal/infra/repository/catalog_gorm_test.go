package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off`, escapeLike("50%_off"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "civic", escapeLike("civic"))
}

func TestListCarsSearchIsLiteral(t *testing.T) {
	db, mock := newMockDB(t)
	like := `%50\%\_off%`

	mock.ExpectQuery(regexp.QuoteMeta(`LOWER(brand) LIKE`)).
		WithArgs(true, like, like, like).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	cars, err := NewCatalogGormRepository(db).ListCars(context.Background(), catalog.CarFilter{Search: " 50%_OFF "})
	require.NoError(t, err)
	assert.Empty(t, cars)
	assert.NoError(t, mock.ExpectationsWereMet())
}
