package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"

	departmentMock "go-hrms/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit Cache - Harus ambil data dari Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectedResp := []department.DepartmentResponse{
			{ID: "dep-1", Name: "HR"},
			{ID: "dep-2", Name: "Produksi"},
		}
		jsonResp, _ := json.Marshal(expectedResp)
		deps.redismock.ExpectGet(department.DepartmentsCacheKey).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HR", resp[0].Name)
	})

	t.Run("Miss Cache - Harus ambil dari DB dan simpan ke Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.redismock.ExpectGet(department.DepartmentsCacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]department.Department{{ID: id, Name: "Finance"}}, nil).
			Times(1)

		expected, _ := json.Marshal([]department.DepartmentResponse{{ID: id.String(), Name: "Finance"}})
		deps.redismock.ExpectSet(department.DepartmentsCacheKey, expected, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Database Error - Harus mengembalikan error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.DepartmentsCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := department.CreateDepartmentRequest{Name: "HR", Description: "Human resources"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, req.Name, d.Name)
				assert.Equal(t, req.Description, d.Description)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, req.Name, resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_department_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "HR"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		targetID := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&department.Department{ID: targetID, Name: "HR"}, nil)

		resp, err := deps.service.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		targetID := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, targetID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, targetID)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "1")

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(&department.Department{ID: targetID, Name: "HR"}, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "People", d.Name)
			return nil
		})
	deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

	name := "People"
	resp, err := deps.service.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "People", resp.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Update_KeepsOmittedFields(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, targetID.String()).
		Return(&department.Department{ID: targetID, Name: "HR", Description: "old"}, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "HR", d.Name)
			assert.Equal(t, "Human resources", d.Description)
			return nil
		})
	deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

	desc := "Human resources"
	_, err := deps.service.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Description: &desc})
	assert.NoError(t, err)
}

func TestDepartmentService_Update_EmptyBody(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Update(context.Background(), uuid.New().String(), department.UpdateDepartmentRequest{})
	assert.ErrorIs(t, err, departmenterrors.ErrEmptyUpdate)
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		targetID := uuid.New().String()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, targetID).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, targetID)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		targetID := uuid.New().String()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, targetID).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, targetID)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
