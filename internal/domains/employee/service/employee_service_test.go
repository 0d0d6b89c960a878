package service

import (
	"context"
	"testing"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int]employee.Employee
	nextID    int
	top       []employee.TopSellingEmployee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[int]employee.Employee), nextID: 1}
	for _, e := range employees {
		r.employees[e.ID] = e
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, entity *employee.Employee) (*employee.Employee, error) {
	created := *entity
	created.ID = r.nextID
	r.nextID++
	r.employees[created.ID] = created
	return &created, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int) (*employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range r.employees {
		if e.Active {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, entity *employee.Employee) (*employee.Employee, error) {
	if _, ok := r.employees[entity.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	r.employees[entity.ID] = *entity
	updated := *entity
	return &updated, nil
}

func (r *fakeEmployeeRepo) GetByStoreID(_ context.Context, storeID int) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.StoreID != nil && *e.StoreID == storeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindPaged(
	_ context.Context,
	_ employee.PagedFilters,
	params pagination.Params,
) (pagination.Page[employee.Employee], error) {
	all, _ := r.GetActive(context.Background())
	return pagination.NewPage(all, params, int64(len(all))), nil
}

func (r *fakeEmployeeRepo) FindTopSellers(_ context.Context) ([]employee.TopSellingEmployee, error) {
	return r.top, nil
}

type fakeStoreFinder struct{ ids map[int]bool }

func (f *fakeStoreFinder) GetByID(_ context.Context, id int) (*store.Store, error) {
	if !f.ids[id] {
		return nil, pgx.ErrNoRows
	}
	return &store.Store{ID: id, Active: true}, nil
}

type fakeSaleFinder struct{ byEmployee map[int][]sale.Sale }

func (f *fakeSaleFinder) GetByEmployeeID(_ context.Context, employeeID int) ([]sale.Sale, error) {
	return f.byEmployee[employeeID], nil
}

func newTestService(repo *fakeEmployeeRepo) employee.EmployeeService {
	return NewEmployeeService(
		repo,
		&fakeStoreFinder{ids: map[int]bool{1: true}},
		&fakeSaleFinder{byEmployee: map[int][]sale.Sale{}},
	)
}

func TestCreateEmployeeUnknownStore(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	storeID := 4
	_, err := svc.CreateEmployee(context.Background(), &employee.CreateEmployeeReq{
		FirstName: "Ana",
		LastName:  "Lopez",
		StoreID:   &storeID,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Store not found with ID: 4", err.Error())
}

func TestCreateEmployeeWithoutStore(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	resp, err := svc.CreateEmployee(context.Background(), &employee.CreateEmployeeReq{
		FirstName: "Ana",
		LastName:  "Lopez",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.StoreID)
	assert.True(t, resp.Active)
}

func TestUpdateEmployeeReassignsStore(t *testing.T) {
	storeID := 1
	repo := newFakeEmployeeRepo(employee.Employee{
		ID: 5, FirstName: "Ana", LastName: "Lopez", StoreID: &storeID, Active: true,
	})
	svc := NewEmployeeService(
		repo,
		&fakeStoreFinder{ids: map[int]bool{1: true, 2: true}},
		&fakeSaleFinder{},
	)

	newStore := 2
	resp, err := svc.UpdateEmployee(context.Background(), 5, &employee.UpdateEmployeeReq{StoreID: &newStore})

	require.NoError(t, err)
	require.NotNil(t, resp.StoreID)
	assert.Equal(t, 2, *resp.StoreID)
	assert.Equal(t, "Ana", resp.FirstName)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	first := "Luis"
	_, err := svc.UpdateEmployee(context.Background(), 11, &employee.UpdateEmployeeReq{FirstName: &first})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Employee not found with ID: 11", err.Error())
}

func TestGetSalesByEmployeeEmptyIsNotFound(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: 3, FirstName: "Ana", LastName: "Lopez", Active: true})
	svc := newTestService(repo)

	_, err := svc.GetSalesByEmployee(context.Background(), 3)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "No sales found for employee ID 3", err.Error())
}

func TestGetTopSellers(t *testing.T) {
	storeID := 1
	repo := newFakeEmployeeRepo()
	repo.top = []employee.TopSellingEmployee{
		{ID: 2, FirstName: "Ana", LastName: "Lopez", StoreID: &storeID, NumberOfSales: 42},
	}
	svc := newTestService(repo)

	resp, err := svc.GetTopSellers(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(42), resp[0].NumberOfSales)
	require.NotNil(t, resp[0].StoreID)
	assert.Equal(t, 1, *resp[0].StoreID)
}
