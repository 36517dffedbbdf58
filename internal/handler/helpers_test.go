package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/talentra/hrm-backend/internal/config"
	"github.com/talentra/hrm-backend/internal/handler"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/repository"
	"github.com/talentra/hrm-backend/internal/response"
	"github.com/talentra/hrm-backend/internal/router"
	"github.com/talentra/hrm-backend/internal/service"
	"github.com/talentra/hrm-backend/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

var setupOnce sync.Once

// envelope mirrors the API response wrapper for decoding in tests.
type envelope struct {
	Status     bool                 `json:"status"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Errors     []string             `json:"errors"`
	Token      string               `json:"token"`
	Pagination *response.Pagination `json:"pagination"`
}

// ─── In-memory user store ──────────────────────────────────────────────

type fakeUserStore struct {
	mu    sync.Mutex
	seq   int
	users map[int]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*model.User)}
}

func (s *fakeUserStore) GetByID(_ context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) ListPaginated(_ context.Context, limit, offset int) ([]model.User, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var out []model.User
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, *s.users[id])
	}
	return out, len(ids), nil
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.seq++
	u.ID = s.seq
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	stored, ok := s.users[u.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = u.Name
	stored.Email = u.Email
	stored.Surname = u.Surname
	stored.Address = u.Address
	stored.Phone = u.Phone
	stored.IsAdmin = u.IsAdmin
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (s *fakeUserStore) UpdatePhoto(_ context.Context, id int, photo *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Photo = photo
	return nil
}

func (s *fakeUserStore) delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// ─── In-memory token store ─────────────────────────────────────────────

type fakeTokenStore struct {
	mu     sync.Mutex
	seq    int
	tokens map[string]int // digest -> user id
	users  *fakeUserStore
}

func newFakeTokenStore(users *fakeUserStore) *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]int), users: users}
}

func (s *fakeTokenStore) Create(_ context.Context, t *model.AuthToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t.ID = s.seq
	s.tokens[t.Digest] = t.UserID
	return nil
}

func (s *fakeTokenStore) GetUserByDigest(ctx context.Context, digest string) (*model.User, error) {
	s.mu.Lock()
	userID, ok := s.tokens[digest]
	s.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return s.users.GetByID(ctx, userID)
}

func (s *fakeTokenStore) DeleteByUser(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for digest, id := range s.tokens {
		if id == userID {
			delete(s.tokens, digest)
		}
	}
	return nil
}

func (s *fakeTokenStore) countFor(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, id := range s.tokens {
		if id == userID {
			n++
		}
	}
	return n
}

// ─── In-memory org directory (departments + employees) ────────────────

type fakeDirectory struct {
	mu            sync.Mutex
	departmentSeq int
	employeeSeq   int
	departments   map[int]*model.Department
	employees     map[int]*model.Employee
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		departments: make(map[int]*model.Department),
		employees:   make(map[int]*model.Employee),
	}
}

func (s *fakeDirectory) GetByID(_ context.Context, id int) (*model.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *d
	return &cp, nil
}

func (s *fakeDirectory) List(_ context.Context) ([]model.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.departments))
	for id := range s.departments {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Department, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.departments[id])
	}
	return out, nil
}

func (s *fakeDirectory) Create(_ context.Context, d *model.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departmentSeq++
	d.ID = s.departmentSeq
	cp := *d
	s.departments[d.ID] = &cp
	return nil
}

func (s *fakeDirectory) Update(_ context.Context, d *model.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.departments[d.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = d.Name
	return nil
}

func (s *fakeDirectory) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.DepartmentID == id {
			return &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		}
	}
	delete(s.departments, id)
	return nil
}

type fakeEmployeeStore struct {
	dir *fakeDirectory
}

func (s *fakeEmployeeStore) GetByID(_ context.Context, id int) (*model.Employee, error) {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	e, ok := s.dir.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEmployeeStore) joined() []model.EmployeeWithDepartment {
	ids := make([]int, 0, len(s.dir.employees))
	for id := range s.dir.employees {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.EmployeeWithDepartment, 0, len(ids))
	for _, id := range ids {
		e := s.dir.employees[id]
		d, ok := s.dir.departments[e.DepartmentID]
		if !ok {
			continue
		}
		out = append(out, model.EmployeeWithDepartment{Employee: *e, Department: d.Name})
	}
	return out
}

func (s *fakeEmployeeStore) ListPaginated(_ context.Context, limit, offset int) ([]model.EmployeeWithDepartment, int, error) {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	all := s.joined()
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *fakeEmployeeStore) ListAll(_ context.Context) ([]model.EmployeeWithDepartment, error) {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	return s.joined(), nil
}

func (s *fakeEmployeeStore) CountByDepartment(_ context.Context) ([]model.DepartmentHeadcount, error) {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	counts := make(map[string]int)
	for _, d := range s.dir.departments {
		counts[d.Name] = 0
	}
	for _, e := range s.dir.employees {
		if d, ok := s.dir.departments[e.DepartmentID]; ok {
			counts[d.Name]++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]model.DepartmentHeadcount, 0, len(names))
	for _, name := range names {
		out = append(out, model.DepartmentHeadcount{Department: name, Count: counts[name]})
	}
	return out, nil
}

func (s *fakeEmployeeStore) Create(_ context.Context, e *model.Employee) error {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	if _, ok := s.dir.departments[e.DepartmentID]; !ok {
		return &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	}
	s.dir.employeeSeq++
	e.ID = s.dir.employeeSeq
	cp := *e
	s.dir.employees[e.ID] = &cp
	return nil
}

func (s *fakeEmployeeStore) Update(_ context.Context, e *model.Employee) error {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	if _, ok := s.dir.departments[e.DepartmentID]; !ok {
		return &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	}
	stored, ok := s.dir.employees[e.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	*stored = *e
	return nil
}

func (s *fakeEmployeeStore) Delete(_ context.Context, id int) error {
	s.dir.mu.Lock()
	defer s.dir.mu.Unlock()
	delete(s.dir.employees, id)
	return nil
}

// ─── Test harness ──────────────────────────────────────────────────────

type testApp struct {
	engine *gin.Engine
	users  *fakeUserStore
	tokens *fakeTokenStore
	dir    *fakeDirectory
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validator.Setup()
	})

	cfg := &config.Config{
		GinMode:        gin.TestMode,
		BcryptCost:     bcrypt.MinCost,
		AvatarDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
		PageSize:       10,
	}

	users := newFakeUserStore()
	tokens := newFakeTokenStore(users)
	dir := newFakeDirectory()

	authService := service.NewAuthService(cfg, tokens)
	userService := service.NewUserService(users)
	avatarService := service.NewAvatarService(cfg)
	departmentService := service.NewDepartmentService(dir, nil)
	employeeService := service.NewEmployeeService(&fakeEmployeeStore{dir: dir}, nil)

	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService, avatarService),
		Department: handler.NewDepartmentHandler(departmentService),
		Employee:   handler.NewEmployeeHandler(employeeService),
	}

	return &testApp{
		engine: router.SetupRouter(authService, handlers, cfg),
		users:  users,
		tokens: tokens,
		dir:    dir,
	}
}

// do performs a JSON request against the app and decodes the envelope.
func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

// register creates a user through the API and returns its token.
func (a *testApp) register(t *testing.T, name, email, password string) string {
	t.Helper()
	code, env := a.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Status)
	require.NotEmpty(t, env.Token)
	return env.Token
}
