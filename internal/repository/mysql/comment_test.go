package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/pratikw008/blog-rest-api/domain"
	repo "github.com/pratikw008/blog-rest-api/internal/repository/mysql"
)

var commentColumns = []string{"id", "post_id", "name", "email", "body", "updated_at", "created_at"}

func TestStoreComment(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
		WillReturnResult(sqlmock.NewResult(21, 1))

	c := &domain.Comment{PostID: 1, Name: "ann", Email: "ann@example.com", Body: "nice write-up"}
	require.NoError(t, repo.NewCommentRepository(db).Store(context.TODO(), c))
	assert.Equal(t, int64(21), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(4, 2, "ann", "ann@example.com", "nice write-up", now, now))

		c, err := repo.NewCommentRepository(db).GetByID(context.TODO(), 4)
		require.NoError(t, err)
		assert.Equal(t, int64(2), c.PostID)
		assert.Equal(t, "ann@example.com", c.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := repo.NewCommentRepository(db).GetByID(context.TODO(), 4)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentsExistByPostID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE post_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	ok, err := repo.NewCommentRepository(db).ExistsByPostID(context.TODO(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchCommentsByPostID(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comments` WHERE post_id = ? ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, 2, "ann", "ann@example.com", "first comment body", now, now).
			AddRow(3, 2, "bob", "bob@example.com", "second comment body", now, now))

	comments, err := repo.NewCommentRepository(db).FetchByPostID(context.TODO(), 2)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(1), comments[0].ID)
	assert.Equal(t, "bob", comments[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &domain.Comment{ID: 4, PostID: 2, Name: "ann", Email: "ann@example.com", Body: "edited comment", UpdatedAt: time.Now()}
	assert.NoError(t, repo.NewCommentRepository(db).Update(context.TODO(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments`")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.NewCommentRepository(db).Delete(context.TODO(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments`")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.NewCommentRepository(db).Delete(context.TODO(), 4), domain.ErrNotFound)
	})
}
