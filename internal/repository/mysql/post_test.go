package mysql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/pratikw008/blog-rest-api/domain"
	repo "github.com/pratikw008/blog-rest-api/internal/repository/mysql"
)

var postColumns = []string{"id", "title", "description", "content", "updated_at", "created_at"}

func TestFetchPosts(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows(postColumns).
		AddRow(2, "Beta", "beta description", "content 2", now, now).
		AddRow(1, "Alpha", "alpha description", "content 1", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts` ORDER BY `title` DESC,id LIMIT")).
		WillReturnRows(rows)

	pr := domain.PageRequest{PageNo: 1, PageSize: 2, SortBy: "title", SortDir: "desc"}
	posts, err := repo.NewPostRepository(db).Fetch(context.TODO(), pr)
	require.NoError(t, err)

	want := []domain.Post{
		{ID: 2, Title: "Beta", Description: "beta description", Content: "content 2", UpdatedAt: now, CreatedAt: now},
		{ID: 1, Title: "Alpha", Description: "alpha description", Content: "content 1", UpdatedAt: now, CreatedAt: now},
	}
	if diff := cmp.Diff(want, posts); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPostsRejectsUnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := repo.NewPostRepository(db).Fetch(context.TODO(), domain.PageRequest{PageSize: 1, SortBy: "1; DROP TABLE posts"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountPosts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `posts`")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))

	n, err := repo.NewPostRepository(db).Count(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(postColumns).AddRow(5, "Title", "a description", "content", now, now))

		p, err := repo.NewPostRepository(db).GetByID(context.TODO(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
		assert.Equal(t, "Title", p.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `posts` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(postColumns))

		_, err := repo.NewPostRepository(db).GetByID(context.TODO(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostExistsByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `posts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	ok, err := repo.NewPostRepository(db).ExistsByID(context.TODO(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
			WillReturnResult(sqlmock.NewResult(12, 1))

		p := &domain.Post{Title: "Title", Description: "a description", Content: "content"}
		require.NoError(t, repo.NewPostRepository(db).Store(context.TODO(), p))
		assert.Equal(t, int64(12), p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate title", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
			WillReturnError(&drv.MySQLError{Number: 1062, Message: "Duplicate entry 'Title' for key 'uk_posts_title'"})

		p := &domain.Post{Title: "Title", Description: "a description", Content: "content"}
		err := repo.NewPostRepository(db).Store(context.TODO(), p)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Zero(t, p.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
			WillReturnError(errors.New("connection reset"))

		err := repo.NewPostRepository(db).Store(context.TODO(), &domain.Post{Title: "T"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store post")
		assert.False(t, errors.Is(err, domain.ErrConflict))
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		p := &domain.Post{ID: 3, Title: "Title", Description: "a description", Content: "content", UpdatedAt: time.Now()}
		assert.NoError(t, repo.NewPostRepository(db).Update(context.TODO(), p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		p := &domain.Post{ID: 3, Title: "Title", Description: "a description", Content: "content", UpdatedAt: time.Now()}
		assert.ErrorIs(t, repo.NewPostRepository(db).Update(context.TODO(), p), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("removes comments then the post", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments` WHERE post_id = ?")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `posts`")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.NewPostRepository(db).Delete(context.TODO(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing post rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comments` WHERE post_id = ?")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `posts`")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.NewPostRepository(db).Delete(context.TODO(), 3), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchPostIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `posts` WHERE id > ? ORDER BY id LIMIT")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4).AddRow(9))

	ids, err := repo.NewPostRepository(db).FetchIDs(context.TODO(), 3, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
